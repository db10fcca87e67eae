package utils

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// WriteFile writes content to a file
func WriteFile(path string, data []byte) error {
	// Security: Use 0600 permissions to restrict access to the file owner
	return os.WriteFile(path, data, 0600)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SanitizeFilename removes unsafe characters from filename
func SanitizeFilename(name string) string {
	unsafe := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|", "\n", "\r"}
	for _, char := range unsafe {
		name = strings.ReplaceAll(name, char, "_")
	}
	return name
}

// TimestampedBase builds an output base name from a user-supplied base,
// a scope suffix and the current time, e.g. "numeros_br_ddd_11_20260827_153000".
func TimestampedBase(base, suffix string) string {
	return fmt.Sprintf("%s_%s_%s", base, suffix, time.Now().Format("20060102_150405"))
}
