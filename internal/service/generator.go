package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"unicode"

	"github.com/passforge/passforge-go/internal/charset"
	"github.com/passforge/passforge-go/internal/cipher"
	"github.com/passforge/passforge-go/internal/metrics"
	"github.com/passforge/passforge-go/internal/model"
)

const (
	MinLength     = 4
	MaxLength     = 32
	DefaultLength = 16

	// Embedded words are capped so short passwords keep some filler.
	maxWordLength = 8

	MinShift = 1
	MaxShift = 25
)

var (
	ErrLengthTooShort  = errors.New("password length must be at least 4")
	ErrLengthTooLong   = errors.New("password length must be at most 32")
	ErrInvalidWordCase = errors.New("word_case must be one of lower, upper, random")
	ErrShiftOutOfRange = errors.New("shift must be between 1 and 25")
)

// WordResolver resolves one word of bounded length. Implemented by
// wordsource.Source.
type WordResolver interface {
	Resolve(ctx context.Context, maxLength int) string
}

// GeneratorService composes passwords from character-set filler, resolved
// words, and Caesar-encoded phrases.
type GeneratorService struct {
	words   WordResolver
	metrics *metrics.Metrics
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(words WordResolver, m *metrics.Metrics) *GeneratorService {
	return &GeneratorService{words: words, metrics: m}
}

// Generate produces a password for the given request. An empty character
// set with word mode disabled yields an empty password; that is a valid
// configuration outcome, not an error.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	length, err := normalizeLength(req.Length)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	wordCase := req.WordCase
	if wordCase == "" {
		wordCase = model.WordCaseLower
	}
	if !wordCase.Valid() {
		return model.GenerateResponse{}, ErrInvalidWordCase
	}

	set := charset.Build(charset.Options{
		Lowercase: boolOrDefault(req.Lowercase, true),
		Uppercase: boolOrDefault(req.Uppercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	})

	var password string
	mode := "charset"
	if boolOrDefault(req.Word, false) {
		mode = "word"
		word := s.words.Resolve(ctx, min(length, maxWordLength))
		password = compose(applyWordCase(word, wordCase), set, length)
	} else {
		password = fill(set, length)
	}

	s.count(mode)
	return model.GenerateResponse{Password: password, Length: len(password)}, nil
}

// GenerateCipher produces a password embedding the Caesar-encoded phrase.
func (s *GeneratorService) GenerateCipher(ctx context.Context, req model.CipherRequest) (model.GenerateResponse, error) {
	length, err := normalizeLength(req.Length)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	if req.Shift < MinShift || req.Shift > MaxShift {
		return model.GenerateResponse{}, ErrShiftOutOfRange
	}

	set := charset.Build(charset.Options{
		Lowercase: boolOrDefault(req.Lowercase, true),
		Uppercase: boolOrDefault(req.Uppercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	})

	password := compose(cipher.Encode(req.Phrase, req.Shift), set, length)

	s.count("cipher")
	return model.GenerateResponse{Password: password, Length: len(password)}, nil
}

func normalizeLength(length int) (int, error) {
	if length == 0 {
		return DefaultLength, nil
	}
	if length < MinLength {
		return 0, ErrLengthTooShort
	}
	if length > MaxLength {
		return 0, ErrLengthTooLong
	}
	return length, nil
}

// compose splices segment into uniform filler drawn from set, producing at
// most length characters. A segment at or over length is truncated; an
// empty set leaves the segment unpadded.
func compose(segment, set string, length int) string {
	if len(segment) >= length {
		return segment[:length]
	}
	if set == "" {
		return segment
	}

	filler := fill(set, length-len(segment))
	offset := rand.Intn(len(filler) + 1)
	return filler[:offset] + segment + filler[offset:]
}

// fill draws n characters independently and uniformly from set.
func fill(set string, n int) string {
	if set == "" || n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = set[rand.Intn(len(set))]
	}
	return string(b)
}

func applyWordCase(word string, c model.WordCase) string {
	switch c {
	case model.WordCaseUpper:
		return strings.ToUpper(word)
	case model.WordCaseRandom:
		runes := []rune(word)
		for i, r := range runes {
			if rand.Intn(2) == 0 {
				runes[i] = unicode.ToUpper(r)
			} else {
				runes[i] = unicode.ToLower(r)
			}
		}
		return string(runes)
	default:
		return strings.ToLower(word)
	}
}

func (s *GeneratorService) count(mode string) {
	if s.metrics != nil {
		s.metrics.Generated.WithLabelValues(mode).Inc()
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
