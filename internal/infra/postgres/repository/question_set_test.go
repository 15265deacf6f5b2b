package repository

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aliskhannn/quiz-runner/internal/infra/postgres"
	quizrepo "github.com/aliskhannn/quiz-runner/internal/repository"
)

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

type fakeDB struct {
	row   fakeRow
	execs []string
	args  [][]any
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	f.args = append(f.args, args)
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return f.row
}

func TestQuestionSetRepositoryGetNotFound(t *testing.T) {
	repo := NewQuestionSetRepository(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}})

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrQuestionSetNotFound) {
		t.Fatalf("Get() error = %v, want ErrQuestionSetNotFound", err)
	}
}

func TestQuestionSetSourceFeedsLoader(t *testing.T) {
	db := &fakeDB{row: fakeRow{value: `{"questions": [{"question": "Q", "options": ["a", "b"], "correct_answer": "b"}]}`}}
	source := NewQuestionSetSource(db, "gp2")

	if source.Name() != "postgres:question_sets/gp2" {
		t.Fatalf("Name() = %q", source.Name())
	}

	set, err := quizrepo.NewLoader(source, nil, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if set.Questions[0].CorrectIndex != 1 {
		t.Fatalf("correct index = %d, want 1", set.Questions[0].CorrectIndex)
	}
}

func TestQuestionSetRepositorySavePassesDocumentAsText(t *testing.T) {
	db := &fakeDB{}
	repo := NewQuestionSetRepository(db)

	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	if err := repo.Save(context.Background(), "gp2", []byte(`{"questions": []}`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if len(db.execs) != 2 || !strings.Contains(db.execs[0], "CREATE TABLE IF NOT EXISTS question_sets") {
		t.Fatalf("unexpected statements: %v", db.execs)
	}
	if got, ok := db.args[1][1].(string); !ok || got != `{"questions": []}` {
		t.Fatalf("document argument = %#v", db.args[1][1])
	}
}

// Runs against a real server only when QUIZ_TEST_DATABASE_URL is set.
func TestQuestionSetRepositoryRoundTrip(t *testing.T) {
	dsn := os.Getenv("QUIZ_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("QUIZ_TEST_DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{MaxConns: 2})
	if err != nil {
		t.Fatalf("NewPool() error = %v", err)
	}
	defer pool.Close()

	name := "test_" + time.Now().UTC().Format("20060102150405.000000000")
	doc := []byte(`{"settings": {"shuffle_options": false}, "questions": [{"id": "x", "options": ["a"], "correct_index": 0}]}`)

	err = postgres.NewTransactor(pool).WithinTx(ctx, func(ctx context.Context, tx postgres.DBTX) error {
		repo := NewQuestionSetRepository(tx)
		if err := repo.EnsureSchema(ctx); err != nil {
			return err
		}
		return repo.Save(ctx, name, doc)
	})
	if err != nil {
		t.Fatalf("WithinTx() error = %v", err)
	}
	defer func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM question_sets WHERE name = $1`, name)
	}()

	set, err := quizrepo.NewLoader(NewQuestionSetSource(pool, name), nil, nil).Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if set.Settings.ShuffleOptions || set.Questions[0].UID != "x__0" {
		t.Fatalf("unexpected set: %+v", set)
	}
}
