package web

import (
	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
	"github.com/aliskhannn/quiz-runner/internal/service"
)

type QuizService interface {
	Select(idx int) bool
	Answer() (entities.ResponseRecord, bool)
	Next() bool
	Prev() bool
	Restart()
	View() service.View
}
