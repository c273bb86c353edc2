package model

// WordCase selects the post-processing applied to a resolved word.
type WordCase string

const (
	WordCaseLower  WordCase = "lower"
	WordCaseUpper  WordCase = "upper"
	WordCaseRandom WordCase = "random"
)

// Valid reports whether the word case is one of the known variants.
func (c WordCase) Valid() bool {
	switch c {
	case WordCaseLower, WordCaseUpper, WordCaseRandom:
		return true
	}
	return false
}

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and
// explicit false. Character classes default to true, word to false.
type GenerateRequest struct {
	Length    int      `json:"length"`
	Lowercase *bool    `json:"lowercase"`
	Uppercase *bool    `json:"uppercase"`
	Numbers   *bool    `json:"numbers"`
	Symbols   *bool    `json:"symbols"`
	Word      *bool    `json:"word"`
	WordCase  WordCase `json:"word_case"`
}

// CipherRequest represents a cipher-mode generation request: the phrase is
// Caesar-encoded and padded with filler from the enabled character classes.
type CipherRequest struct {
	Length    int    `json:"length"`
	Phrase    string `json:"phrase"`
	Shift     int    `json:"shift"`
	Lowercase *bool  `json:"lowercase"`
	Uppercase *bool  `json:"uppercase"`
	Numbers   *bool  `json:"numbers"`
	Symbols   *bool  `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
