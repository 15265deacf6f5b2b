package entities

// ResponseRecord is the answer given to a single question.
// It is written once and never changed until the session is reset.
type ResponseRecord struct {
	SelectedIndex int   // original position of the selected option
	IsCorrect     bool  // whether SelectedIndex matched the correct index
	DisplayOrder  []int // original option positions in the order they were shown
}

// QuizSession holds the state of one pass through a question set.
type QuizSession struct {
	questions []Question
	order     []int                     // traversal order over question positions
	position  int                       // index into order
	responses map[string]ResponseRecord // keyed by Question.UID
	score     int                       // correctly answered questions
	answered  int                       // answered questions
	finished  bool                      // end-of-quiz view reached
}

// NewQuizSession creates a session over questions traversed in the given order.
// A nil order means source order.
func NewQuizSession(questions []Question, order []int) *QuizSession {
	s := &QuizSession{questions: questions}
	s.Reset(order)
	return s
}

// Reset clears responses and counters and starts over with a new traversal order.
func (s *QuizSession) Reset(order []int) {
	if order == nil {
		order = IdentityOrder(len(s.questions))
	}
	s.order = order
	s.position = 0
	s.responses = make(map[string]ResponseRecord, len(s.questions))
	s.score = 0
	s.answered = 0
	s.finished = false
}

// Current returns the question at the current position.
func (s *QuizSession) Current() (*Question, bool) {
	if s.position < 0 || s.position >= len(s.order) {
		return nil, false
	}
	return &s.questions[s.order[s.position]], true
}

// Saved returns the response recorded for the question with the given UID.
func (s *QuizSession) Saved(uid string) (ResponseRecord, bool) {
	rec, ok := s.responses[uid]
	return rec, ok
}

// CurrentSaved returns the response recorded for the current question.
func (s *QuizSession) CurrentSaved() (ResponseRecord, bool) {
	q, ok := s.Current()
	if !ok {
		return ResponseRecord{}, false
	}
	return s.Saved(q.UID)
}

// Record stores rec for uid and updates counters.
// It returns false and changes nothing when uid already has a response.
func (s *QuizSession) Record(uid string, rec ResponseRecord) bool {
	if _, exists := s.responses[uid]; exists {
		return false
	}

	rec.DisplayOrder = append([]int(nil), rec.DisplayOrder...)
	s.responses[uid] = rec
	s.answered++
	if rec.IsCorrect {
		s.score++
	}
	return true
}

// Advance moves to the next position, or marks the session finished at the last one.
func (s *QuizSession) Advance() {
	if s.position < len(s.order)-1 {
		s.position++
		return
	}
	s.finished = true
}

// Retreat moves back one position and leaves the end-of-quiz view.
// It returns false when there was nothing to change.
func (s *QuizSession) Retreat() bool {
	if s.finished {
		s.finished = false
		if s.position > 0 {
			s.position--
		}
		return true
	}
	if s.position == 0 {
		return false
	}
	s.position--
	return true
}

func (s *QuizSession) Questions() []Question { return s.questions }
func (s *QuizSession) Order() []int          { return append([]int(nil), s.order...) }
func (s *QuizSession) Position() int         { return s.position }
func (s *QuizSession) Total() int            { return len(s.questions) }
func (s *QuizSession) Score() int            { return s.score }
func (s *QuizSession) Answered() int         { return s.answered }
func (s *QuizSession) Finished() bool        { return s.finished }
func (s *QuizSession) ResponseCount() int    { return len(s.responses) }

// Failed returns the number of incorrectly answered questions.
func (s *QuizSession) Failed() int {
	if failed := s.answered - s.score; failed > 0 {
		return failed
	}
	return 0
}

// IdentityOrder returns 0..n-1.
func IdentityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
