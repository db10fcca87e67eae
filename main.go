package main

import "fonegen/cmd"

func main() {
	cmd.Execute()
}
