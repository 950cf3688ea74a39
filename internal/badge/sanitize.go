package badge

import "strings"

// invalidStemChars are the characters Windows rejects in a file name
// component. Control characters below 0x20 are rejected as well.
const invalidStemChars = `<>:"/\|?*`

// SanitizeStem replaces every character that cannot appear in a file
// name component with an underscore. Total and idempotent: clean input
// comes back unchanged.
func SanitizeStem(text string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || strings.ContainsRune(invalidStemChars, r) {
			return '_'
		}
		return r
	}, text)
}
