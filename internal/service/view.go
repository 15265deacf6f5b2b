package service

import (
	"fmt"
	"slices"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

const (
	msgNoQuestionText = "(No question text)"
	msgEndProgress    = "End"
	msgEndOfQuiz      = "End of quiz"
	msgLoadFailed     = "Failed to load."
	msgCannotStart    = "Could not start the quiz."
)

// OptionView is one selectable option as displayed.
type OptionView struct {
	Index   int    `json:"index"` // original position in the question
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// Feedback describes the outcome of an answered question.
type Feedback struct {
	Correct     bool   `json:"correct"`
	CorrectText string `json:"correct_text,omitempty"` // set only for incorrect answers
}

// Controls holds the enabled state of the four commands.
type Controls struct {
	Answer  bool `json:"answer"`
	Next    bool `json:"next"`
	Prev    bool `json:"prev"`
	Restart bool `json:"restart"`
}

// View is everything a surface needs to draw the current state.
type View struct {
	Status         string       `json:"status"`
	Progress       string       `json:"progress"`
	Question       string       `json:"question"`
	Options        []OptionView `json:"options"`
	InputsDisabled bool         `json:"inputs_disabled"`
	Result         *Feedback    `json:"result,omitempty"`
	Explanation    string       `json:"explanation,omitempty"`
	Finished       bool         `json:"finished"`
	FinalScore     string       `json:"final_score,omitempty"`
	Error          string       `json:"error,omitempty"`

	Score    int `json:"score"`
	Answered int `json:"answered"`
	Total    int `json:"total"`
	Failed   int `json:"failed"`

	Controls Controls `json:"controls"`
}

// DisplayOrder decides the option order for q. A saved response replays the
// order recorded at answer time; otherwise options are shuffled when enabled.
func DisplayOrder(q *entities.Question, saved *entities.ResponseRecord, shuffleOptions bool, shuffle ShuffleFunc) []int {
	if saved != nil && len(saved.DisplayOrder) == len(q.Options) {
		return slices.Clone(saved.DisplayOrder)
	}
	return shuffledOrder(len(q.Options), saved == nil && shuffleOptions, shuffle)
}

// ErrorView is shown instead of a question when loading failed.
// Every control is disabled.
func ErrorView(err error) View {
	return View{
		Status:         msgLoadFailed,
		Question:       msgCannotStart,
		Error:          err.Error(),
		InputsDisabled: true,
	}
}

// View projects the current session state. It does not change anything.
func (s *QuizService) View() View {
	sess := s.session
	v := View{
		Score:    sess.Score(),
		Answered: sess.Answered(),
		Total:    sess.Total(),
		Failed:   sess.Failed(),
	}

	if sess.Finished() {
		if s.settings.ShowProgress {
			v.Progress = msgEndProgress
		}
		v.Question = msgEndOfQuiz
		v.Finished = true
		v.FinalScore = fmt.Sprintf("Score: %d / %d", sess.Score(), sess.Total())
		v.InputsDisabled = true
		v.Controls = Controls{Prev: true, Restart: true}
		return v
	}

	q, ok := sess.Current()
	if !ok {
		v.Controls.Restart = true
		return v
	}
	saved, answered := sess.Saved(q.UID)

	if s.settings.ShowProgress {
		v.Progress = fmt.Sprintf("Question %d / %d", sess.Position()+1, sess.Total())
	}

	v.Question = q.Text
	if v.Question == "" {
		v.Question = msgNoQuestionText
	}

	checked := s.selected
	if answered {
		checked = saved.SelectedIndex
	}

	v.Options = make([]OptionView, 0, len(s.display))
	for _, idx := range s.display {
		if idx < 0 || idx >= len(q.Options) {
			continue
		}
		v.Options = append(v.Options, OptionView{
			Index:   idx,
			Text:    q.Options[idx],
			Checked: idx == checked,
		})
	}

	if answered {
		v.InputsDisabled = true
		v.Result = &Feedback{Correct: saved.IsCorrect}
		if !saved.IsCorrect {
			v.Result.CorrectText = q.CorrectText()
		}
		if s.settings.ShowExplanation && q.HasExplanation() {
			v.Explanation = q.Explanation
		}
	}

	v.Controls = Controls{
		Answer:  !answered && s.selected >= 0,
		Next:    answered,
		Prev:    sess.Position() > 0,
		Restart: true,
	}
	return v
}
