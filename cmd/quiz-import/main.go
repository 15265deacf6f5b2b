package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-runner/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/quiz-runner/internal/infra/postgres/repository"
	"github.com/aliskhannn/quiz-runner/internal/repository"
)

var errMissingDSN = errors.New("DATABASE_URL is not set")

func main() {
	_ = godotenv.Load()

	file := pflag.String("file", "GP_2.json", "question document to import")
	name := pflag.String("name", "default", "question set name to store it under")
	timeout := pflag.Duration("timeout", 30*time.Second, "overall import timeout")
	pflag.Parse()

	lg, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	if err := run(ctx, lg, os.Getenv("DATABASE_URL"), *file, *name); err != nil {
		lg.Fatal("import failed", zap.String("file", *file), zap.String("name", *name), zap.Error(err))
	}
}

func run(ctx context.Context, lg *zap.Logger, dsn, file, name string) error {
	if dsn == "" {
		return errMissingDSN
	}

	source := repository.NewFileSource(file)
	data, err := source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	// Refuse documents the quiz could not load.
	set, err := repository.NewLoader(source, nil, lg).Load(ctx)
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{MaxConns: 1})
	if err != nil {
		return err
	}
	defer pool.Close()

	err = postgres.NewTransactor(pool).WithinTx(ctx, func(ctx context.Context, tx postgres.DBTX) error {
		repo := pgrepo.NewQuestionSetRepository(tx)
		if err := repo.EnsureSchema(ctx); err != nil {
			return err
		}
		return repo.Save(ctx, name, data)
	})
	if err != nil {
		return err
	}

	lg.Info("question set imported",
		zap.String("name", name),
		zap.Int("questions", len(set.Questions)),
	)
	return nil
}
