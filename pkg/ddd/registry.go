// Package ddd holds the registry of Brazilian area codes (DDDs) as
// allocated by ANATEL.
package ddd

import "sort"

// validCodes covers all 67 allocated DDDs across every Brazilian state.
var validCodes = map[string]struct{}{
	"11": {}, "12": {}, "13": {}, "14": {}, "15": {}, "16": {}, "17": {}, "18": {}, "19": {},
	"21": {}, "22": {}, "24": {}, "27": {}, "28": {},
	"31": {}, "32": {}, "33": {}, "34": {}, "35": {}, "37": {}, "38": {},
	"41": {}, "42": {}, "43": {}, "44": {}, "45": {}, "46": {}, "47": {}, "48": {}, "49": {},
	"51": {}, "53": {}, "54": {}, "55": {},
	"61": {}, "62": {}, "63": {}, "64": {}, "65": {}, "66": {}, "67": {}, "68": {}, "69": {},
	"71": {}, "73": {}, "74": {}, "75": {}, "77": {}, "79": {},
	"81": {}, "82": {}, "83": {}, "84": {}, "85": {}, "86": {}, "87": {}, "88": {}, "89": {},
	"91": {}, "92": {}, "93": {}, "94": {}, "95": {}, "96": {}, "97": {}, "98": {}, "99": {},
}

// IsValid reports whether code is an allocated Brazilian DDD.
func IsValid(code string) bool {
	_, ok := validCodes[code]
	return ok
}

// All returns every valid DDD in ascending order.
func All() []string {
	codes := make([]string, 0, len(validCodes))
	for code := range validCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Count returns the number of allocated DDDs.
func Count() int {
	return len(validCodes)
}
