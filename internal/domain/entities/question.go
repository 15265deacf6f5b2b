package entities

import "strings"

// DefaultQuestionType is assigned when a question entry carries no type.
const DefaultQuestionType = "single_choice"

// Question is a normalized quiz question. It is never modified after loading.
type Question struct {
	UID           string   // unique key within the loaded set: "<id>__<pos>" or "q__<pos>"
	ID            string   // source id, may be empty or duplicated
	Type          string   // informational only
	Text          string   // question statement
	Options       []string // option texts in source order
	CorrectAnswer string   // raw correct answer text from the document
	CorrectIndex  int      // index into Options, -1 when unresolvable
	Explanation   string   // optional explanation shown after answering
}

// HasValidCorrectIndex reports whether CorrectIndex points at an option.
func (q *Question) HasValidCorrectIndex() bool {
	return q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options)
}

// CorrectText returns the text of the correct option, falling back to
// the raw correct answer when the index does not resolve.
func (q *Question) CorrectText() string {
	if q.HasValidCorrectIndex() {
		return q.Options[q.CorrectIndex]
	}
	return q.CorrectAnswer
}

// HasExplanation reports whether the question has a non-blank explanation.
func (q *Question) HasExplanation() bool {
	return strings.TrimSpace(q.Explanation) != ""
}

// IsCorrect reports whether the option at original position selected is the correct one.
func (q *Question) IsCorrect(selected int) bool {
	return selected == q.CorrectIndex
}

// QuestionSet is the result of loading a question document.
type QuestionSet struct {
	Settings  Settings
	Questions []Question
}
