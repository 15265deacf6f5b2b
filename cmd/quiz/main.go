package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-runner/internal/config"
	"github.com/aliskhannn/quiz-runner/internal/delivery/terminal"
	"github.com/aliskhannn/quiz-runner/internal/delivery/web"
	"github.com/aliskhannn/quiz-runner/internal/logger"
	"github.com/aliskhannn/quiz-runner/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/quiz-runner/internal/infra/postgres/repository"
	"github.com/aliskhannn/quiz-runner/internal/repository"
	"github.com/aliskhannn/quiz-runner/internal/service"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Delivery.Mode == config.DeliveryTerminal {
		terminal.Loading(os.Stdout)
	}

	quiz, loadErr := loadQuiz(ctx, cfg, lg)

	switch cfg.Delivery.Mode {
	case config.DeliveryWeb:
		var svc web.QuizService
		if quiz != nil {
			svc = quiz
		}
		if err := web.NewHandler(svc, loadErr, lg).Run(ctx, cfg.Delivery.Addr); err != nil {
			lg.Fatal("web handler failed", zap.Error(err))
		}

	default:
		var svc terminal.QuizService
		if quiz != nil {
			svc = quiz
		}
		err := terminal.NewHandler(os.Stdin, os.Stdout, lg, svc, loadErr).Run(ctx)
		if err != nil && ctx.Err() == nil {
			lg.Fatal("terminal handler failed", zap.Error(err))
		}
	}
}

// loadQuiz fetches the configured document. A failure is returned as the
// second value so the delivery can show it in place of a question.
func loadQuiz(ctx context.Context, cfg *config.Config, lg *zap.Logger) (*service.QuizService, error) {
	if cfg.Source.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Source.Timeout)
		defer cancel()
	}

	source, closeSource, err := newSource(ctx, cfg)
	if err != nil {
		lg.Error("failed to open question source", zap.String("kind", cfg.Source.Kind), zap.Error(err))
		return nil, &repository.LoadError{Source: cfg.Source.Kind, Cause: err}
	}
	defer closeSource()

	set, err := repository.NewLoader(source, cfg.Quiz.Settings, lg).Load(ctx)
	if err != nil {
		return nil, err
	}

	return service.NewQuizService(set, nil, lg), nil
}

func newSource(ctx context.Context, cfg *config.Config) (repository.DocumentSource, func(), error) {
	switch cfg.Source.Kind {
	case config.SourceHTTP:
		return repository.NewHTTPSource(cfg.Source.URL, nil), func() {}, nil

	case config.SourcePostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		return pgrepo.NewQuestionSetSource(pool, cfg.Source.QuestionSet), pool.Close, nil

	default:
		return repository.NewFileSource(cfg.Source.Path), func() {}, nil
	}
}
