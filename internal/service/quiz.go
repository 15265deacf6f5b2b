package service

import (
	"slices"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

// QuizService drives a single quiz session. Every command is synchronous
// and returns false when its precondition does not hold.
// It is not safe for concurrent use.
type QuizService struct {
	settings entities.Settings
	session  *entities.QuizSession
	shuffle  ShuffleFunc
	logger   *zap.Logger

	display  []int // option order of the visible question, by original position
	selected int   // pending selection by original position, -1 if none
}

// NewQuizService starts a session over set.
func NewQuizService(set *entities.QuestionSet, shuffle ShuffleFunc, logger *zap.Logger) *QuizService {
	if shuffle == nil {
		shuffle = DefaultShuffle
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &QuizService{
		settings: set.Settings,
		shuffle:  shuffle,
		logger:   logger,
	}
	s.session = entities.NewQuizSession(set.Questions, s.traversalOrder(len(set.Questions)))
	s.enter()

	return s
}

// Settings returns the effective settings of the session.
func (s *QuizService) Settings() entities.Settings { return s.settings }

// Session exposes the underlying state for read-only use.
func (s *QuizService) Session() *entities.QuizSession { return s.session }

// Select marks the option at original position idx as the pending choice.
func (s *QuizService) Select(idx int) bool {
	if s.session.Finished() || s.currentAnswered() {
		return false
	}
	if !slices.Contains(s.display, idx) {
		return false
	}

	s.selected = idx
	return true
}

// Answer submits the pending selection for the current question.
func (s *QuizService) Answer() (entities.ResponseRecord, bool) {
	if s.session.Finished() || s.currentAnswered() || s.selected < 0 {
		return entities.ResponseRecord{}, false
	}

	q, ok := s.session.Current()
	if !ok {
		return entities.ResponseRecord{}, false
	}

	rec := entities.ResponseRecord{
		SelectedIndex: s.selected,
		IsCorrect:     q.IsCorrect(s.selected),
		DisplayOrder:  slices.Clone(s.display),
	}
	if !s.session.Record(q.UID, rec) {
		return entities.ResponseRecord{}, false
	}

	s.logger.Info("answer recorded",
		zap.String("question_uid", q.UID),
		zap.Int("selected_index", rec.SelectedIndex),
		zap.Bool("is_correct", rec.IsCorrect),
		zap.Int("score", s.session.Score()),
		zap.Int("answered", s.session.Answered()),
	)

	return rec, true
}

// Next advances to the following question, or to the end view after the last one.
func (s *QuizService) Next() bool {
	if s.session.Finished() || !s.currentAnswered() {
		return false
	}

	s.session.Advance()
	if s.session.Finished() {
		s.logger.Info("quiz finished",
			zap.Int("score", s.session.Score()),
			zap.Int("total", s.session.Total()),
		)
		return true
	}

	s.enter()
	s.logger.Debug("moved to next question", zap.Int("position", s.session.Position()))
	return true
}

// Prev goes back one question. From the end view it returns to review.
func (s *QuizService) Prev() bool {
	if !s.session.Retreat() {
		return false
	}

	s.enter()
	s.logger.Debug("moved to previous question", zap.Int("position", s.session.Position()))
	return true
}

// Restart discards every response and begins a fresh pass.
func (s *QuizService) Restart() {
	s.session.Reset(s.traversalOrder(s.session.Total()))
	s.enter()

	s.logger.Info("quiz restarted", zap.Int("total", s.session.Total()))
}

func (s *QuizService) currentAnswered() bool {
	_, ok := s.session.CurrentSaved()
	return ok
}

// enter prepares the visible question: memoizes its option order and clears the selection.
func (s *QuizService) enter() {
	s.selected = -1
	s.display = nil

	q, ok := s.session.Current()
	if !ok {
		return
	}

	var saved *entities.ResponseRecord
	if rec, ok := s.session.Saved(q.UID); ok {
		saved = &rec
	}
	s.display = DisplayOrder(q, saved, s.settings.ShuffleOptions, s.shuffle)
}

func (s *QuizService) traversalOrder(n int) []int {
	return shuffledOrder(n, s.settings.ShuffleQuestions, s.shuffle)
}
