package wordsource

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errEmptyResult = errors.New("provider returned no word")

// Provider describes one remote word endpoint: how to build its
// length-parameterized URL and how to pull a single word out of its
// response body.
type Provider struct {
	Name    string
	URL     func(length int) string
	Headers map[string]string
	Parse   func(body []byte) (string, error)
}

// DefaultProviders returns the fixed provider list swept in round-robin
// order. The WordsAPI slot needs an API key and fails until one is
// configured; that failure is tolerated like any other.
func DefaultProviders(wordsAPIKey string) []Provider {
	return []Provider{
		{
			Name: "random-word-api",
			URL: func(length int) string {
				return fmt.Sprintf("https://random-word-api.herokuapp.com/word?length=%d", length)
			},
			Parse: parseWordArray,
		},
		{
			Name: "random-word-vercel",
			URL: func(length int) string {
				return fmt.Sprintf("https://random-word-api.vercel.app/api?words=1&length=%d", length)
			},
			Parse: parseWordArray,
		},
		{
			Name: "datamuse",
			URL: func(length int) string {
				return fmt.Sprintf("https://api.datamuse.com/words?sp=%s&max=1", strings.Repeat("?", length))
			},
			Parse: parseWordObjects,
		},
		{
			Name: "wordsapi",
			URL: func(length int) string {
				return fmt.Sprintf("https://wordsapiv1.p.rapidapi.com/words/?random=true&letters=%d", length)
			},
			Headers: map[string]string{
				"X-RapidAPI-Key":  wordsAPIKey,
				"X-RapidAPI-Host": "wordsapiv1.p.rapidapi.com",
			},
			Parse: parseWordField,
		},
	}
}

// parseWordArray handles a bare JSON string array: ["word"].
func parseWordArray(body []byte) (string, error) {
	var words []string
	if err := json.Unmarshal(body, &words); err != nil {
		return "", err
	}
	if len(words) == 0 || words[0] == "" {
		return "", errEmptyResult
	}
	return words[0], nil
}

// parseWordObjects handles an array of objects: [{"word": "..."}].
func parseWordObjects(body []byte) (string, error) {
	var results []struct {
		Word string `json:"word"`
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return "", err
	}
	if len(results) == 0 || results[0].Word == "" {
		return "", errEmptyResult
	}
	return results[0].Word, nil
}

// parseWordField handles a single object: {"word": "..."}.
func parseWordField(body []byte) (string, error) {
	var result struct {
		Word string `json:"word"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Word == "" {
		return "", errEmptyResult
	}
	return result.Word, nil
}
