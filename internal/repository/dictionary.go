package repository

import (
	"context"
	"database/sql"
)

// DictionaryRepository reads custom dictionary words used by the word
// source's local fallback. Only words are stored here, never generated
// passwords.
type DictionaryRepository struct {
	db *sql.DB
}

// NewDictionaryRepository creates a new DictionaryRepository.
func NewDictionaryRepository(db *sql.DB) *DictionaryRepository {
	return &DictionaryRepository{db: db}
}

// ListWords retrieves all enabled custom dictionary words.
func (r *DictionaryRepository) ListWords(ctx context.Context) ([]string, error) {
	query := `SELECT word FROM dictionary_words WHERE enabled = TRUE ORDER BY word`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}
