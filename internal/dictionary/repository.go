package dictionary

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// CustomWord is one row of the shared terminology store: a word that a team
// has approved for a language on top of the stock word lists.
type CustomWord struct {
	Word      string    `db:"word"`
	Language  string    `db:"language"`
	AddedBy   string    `db:"added_by"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CustomWordRepository defines operations for managing custom words.
type CustomWordRepository interface {
	FindAllByLanguage(ctx context.Context, language string) ([]CustomWord, error)
	Upsert(ctx context.Context, word *CustomWord) error
}

// DBCustomWordRepository implements CustomWordRepository using MySQL.
type DBCustomWordRepository struct {
	db *sqlx.DB
}

// NewDBCustomWordRepository creates a new DBCustomWordRepository.
func NewDBCustomWordRepository(db *sqlx.DB) *DBCustomWordRepository {
	return &DBCustomWordRepository{db: db}
}

// FindAllByLanguage returns all custom words for a language.
func (r *DBCustomWordRepository) FindAllByLanguage(ctx context.Context, language string) ([]CustomWord, error) {
	var words []CustomWord
	if err := r.db.SelectContext(ctx, &words,
		`SELECT word, language, added_by, created_at, updated_at
		FROM custom_words WHERE language = ? ORDER BY word`, language); err != nil {
		return nil, fmt.Errorf("db.SelectContext(custom_words) > %w", err)
	}
	return words, nil
}

// Upsert inserts or updates a custom word.
func (r *DBCustomWordRepository) Upsert(ctx context.Context, word *CustomWord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO custom_words (word, language, added_by)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE added_by = VALUES(added_by)`,
		word.Word, word.Language, word.AddedBy)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert custom_word) > %w", err)
	}
	return nil
}
