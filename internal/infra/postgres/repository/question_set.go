package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/quiz-runner/internal/infra/postgres"
)

var ErrQuestionSetNotFound = errors.New("question set not found")

const questionSetsSchema = `
	CREATE TABLE IF NOT EXISTS question_sets (
		name       TEXT PRIMARY KEY,
		document   JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// QuestionSetRepository stores question documents by name.
type QuestionSetRepository struct {
	db postgres.DBTX
}

// NewQuestionSetRepository creates a new QuestionSetRepository.
func NewQuestionSetRepository(db postgres.DBTX) *QuestionSetRepository {
	return &QuestionSetRepository{db: db}
}

// EnsureSchema creates the question_sets table when it does not exist.
func (r *QuestionSetRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, questionSetsSchema); err != nil {
		return fmt.Errorf("create question_sets: %w", err)
	}
	return nil
}

// Save inserts or replaces the document stored under name.
func (r *QuestionSetRepository) Save(ctx context.Context, name string, document []byte) error {
	query := `
		INSERT INTO question_sets (name, document, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (name) DO UPDATE
		SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.Exec(ctx, query, name, string(document)); err != nil {
		return fmt.Errorf("save question set %q: %w", name, err)
	}
	return nil
}

// Get returns the raw document stored under name.
func (r *QuestionSetRepository) Get(ctx context.Context, name string) ([]byte, error) {
	var document string
	err := r.db.QueryRow(ctx, `SELECT document::text FROM question_sets WHERE name = $1`, name).Scan(&document)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrQuestionSetNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("get question set %q: %w", name, err)
	}
	return []byte(document), nil
}

// QuestionSetSource serves a stored document to the question loader.
type QuestionSetSource struct {
	repo *QuestionSetRepository
	name string
}

// NewQuestionSetSource creates a source for the document stored under name.
func NewQuestionSetSource(db postgres.DBTX, name string) *QuestionSetSource {
	return &QuestionSetSource{repo: NewQuestionSetRepository(db), name: name}
}

func (s *QuestionSetSource) Name() string { return "postgres:question_sets/" + s.name }

func (s *QuestionSetSource) Fetch(ctx context.Context) ([]byte, error) {
	return s.repo.Get(ctx, s.name)
}
