package wordsource

import "math/rand"

const (
	consonants = "bcdfghjklmnpqrstvwxyz"
	vowels     = "aeiou"
)

// Synthesize builds a pronounceable word of exactly length characters by
// alternating consonant and vowel picks, starting with a consonant. It is
// the last resort of the fallback chain and cannot fail for length >= 1.
func Synthesize(length int) string {
	if length <= 0 {
		return ""
	}

	word := make([]byte, length)
	for i := range word {
		if i%2 == 0 {
			word[i] = consonants[rand.Intn(len(consonants))]
		} else {
			word[i] = vowels[rand.Intn(len(vowels))]
		}
	}
	return string(word)
}
