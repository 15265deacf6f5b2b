package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

// LoadError is returned when a question document cannot be fetched or parsed.
type LoadError struct {
	Source string
	Cause  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// Loader produces a QuestionSet from a DocumentSource.
type Loader struct {
	source    DocumentSource
	overrides map[string]bool
	logger    *zap.Logger
}

// NewLoader creates a Loader. Overrides are applied after document settings.
func NewLoader(source DocumentSource, overrides map[string]bool, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		source:    source,
		overrides: overrides,
		logger:    logger,
	}
}

// Load fetches and normalizes the question set once.
func (l *Loader) Load(ctx context.Context) (*entities.QuestionSet, error) {
	l.logger.Info("loading questions", zap.String("source", l.source.Name()))

	data, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, l.fail(err)
	}

	set, err := ParseQuestionSet(data)
	if err != nil {
		return nil, l.fail(err)
	}
	set.Settings = set.Settings.Apply(l.overrides)

	l.logger.Info("questions loaded",
		zap.String("source", l.source.Name()),
		zap.Int("count", len(set.Questions)),
		zap.Bool("shuffle_questions", set.Settings.ShuffleQuestions),
		zap.Bool("shuffle_options", set.Settings.ShuffleOptions),
	)
	return set, nil
}

func (l *Loader) fail(err error) error {
	l.logger.Error("failed to load questions",
		zap.String("source", l.source.Name()),
		zap.Error(err),
	)
	return &LoadError{Source: l.source.Name(), Cause: err}
}
