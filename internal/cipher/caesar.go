// Package cipher implements the Caesar transform used by the cipher
// generation mode.
package cipher

// Encode shifts every ASCII letter in text forward by shift positions
// within its own case's alphabet, wrapping modulo 26. Non-letter characters
// pass through unchanged. Shifts outside [0,25] are normalized.
func Encode(text string, shift int) string {
	shift = ((shift % 26) + 26) % 26

	out := []byte(text)
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch {
		case c >= 'a' && c <= 'z':
			out[i] = 'a' + (c-'a'+byte(shift))%26
		case c >= 'A' && c <= 'Z':
			out[i] = 'A' + (c-'A'+byte(shift))%26
		}
	}
	return string(out)
}

// Decode reverses Encode for the same shift.
func Decode(text string, shift int) string {
	return Encode(text, 26-shift)
}
