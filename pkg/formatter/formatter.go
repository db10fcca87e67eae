// Package formatter renders generated numbers in their two output
// representations.
package formatter

import "fmt"

// Format renders an area code and a 9-digit local number as the pair
// (E.164, national). E.164 is "+55" followed by the DDD and the local
// number. National is "(DD) 9 XXXX-YYYY" with the ninth digit isolated.
// Inputs are assumed already validated.
func Format(areaCode, local string) (e164, nacional string) {
	e164 = "+55" + areaCode + local
	nacional = fmt.Sprintf("(%s) %c %s-%s", areaCode, local[0], local[1:5], local[5:])
	return e164, nacional
}
