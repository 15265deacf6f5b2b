package entities

import "testing"

func twoQuestions() []Question {
	return []Question{
		{UID: "q__0", Options: []string{"A", "B"}, CorrectIndex: 0},
		{UID: "q__1", Options: []string{"C", "D"}, CorrectIndex: 1},
	}
}

func TestQuizSessionRecordIsWriteOnce(t *testing.T) {
	s := NewQuizSession(twoQuestions(), nil)

	if !s.Record("q__0", ResponseRecord{SelectedIndex: 0, IsCorrect: true, DisplayOrder: []int{1, 0}}) {
		t.Fatalf("first record should be accepted")
	}
	if s.Record("q__0", ResponseRecord{SelectedIndex: 1, IsCorrect: false}) {
		t.Fatalf("second record for the same question should be rejected")
	}

	if s.Answered() != 1 || s.Score() != 1 || s.Failed() != 0 {
		t.Fatalf("counters = answered %d score %d failed %d, want 1 1 0", s.Answered(), s.Score(), s.Failed())
	}

	rec, ok := s.Saved("q__0")
	if !ok || rec.SelectedIndex != 0 || !rec.IsCorrect {
		t.Fatalf("saved record changed: %+v", rec)
	}
	if len(rec.DisplayOrder) != 2 || rec.DisplayOrder[0] != 1 {
		t.Fatalf("display order not kept: %v", rec.DisplayOrder)
	}
}

func TestQuizSessionRecordCopiesDisplayOrder(t *testing.T) {
	s := NewQuizSession(twoQuestions(), nil)
	order := []int{1, 0}
	s.Record("q__0", ResponseRecord{DisplayOrder: order})
	order[0] = 0

	rec, _ := s.Saved("q__0")
	if rec.DisplayOrder[0] != 1 {
		t.Fatalf("record aliases caller slice: %v", rec.DisplayOrder)
	}
}

func TestQuizSessionNavigation(t *testing.T) {
	s := NewQuizSession(twoQuestions(), []int{1, 0})

	q, ok := s.Current()
	if !ok || q.UID != "q__1" {
		t.Fatalf("current = %+v, want q__1", q)
	}
	if s.Retreat() {
		t.Fatalf("retreat at position 0 should be a no-op")
	}

	s.Advance()
	if s.Position() != 1 || s.Finished() {
		t.Fatalf("position %d finished %v, want 1 false", s.Position(), s.Finished())
	}

	s.Advance()
	if !s.Finished() || s.Position() != 1 {
		t.Fatalf("advance at last position should finish, got position %d finished %v", s.Position(), s.Finished())
	}

	if !s.Retreat() {
		t.Fatalf("retreat from finished view should succeed")
	}
	if s.Finished() || s.Position() != 0 {
		t.Fatalf("position %d finished %v, want 0 false", s.Position(), s.Finished())
	}
}

func TestQuizSessionRetreatFromFinishedSingleQuestion(t *testing.T) {
	s := NewQuizSession(twoQuestions()[:1], nil)
	s.Advance()
	if !s.Finished() {
		t.Fatalf("expected finished")
	}
	if !s.Retreat() || s.Finished() || s.Position() != 0 {
		t.Fatalf("retreat should leave the end view at position 0")
	}
}

func TestQuizSessionReset(t *testing.T) {
	s := NewQuizSession(twoQuestions(), nil)
	s.Record("q__0", ResponseRecord{SelectedIndex: 1})
	s.Advance()
	s.Advance()

	s.Reset([]int{1, 0})

	if s.Position() != 0 || s.Finished() {
		t.Fatalf("position %d finished %v after reset", s.Position(), s.Finished())
	}
	if s.Answered() != 0 || s.Score() != 0 || s.Failed() != 0 || s.ResponseCount() != 0 {
		t.Fatalf("counters not cleared after reset")
	}
	if got := s.Order(); got[0] != 1 || got[1] != 0 {
		t.Fatalf("order = %v, want [1 0]", got)
	}
}

func TestQuizSessionFailedNeverNegative(t *testing.T) {
	s := NewQuizSession(twoQuestions(), nil)
	if s.Failed() != 0 {
		t.Fatalf("failed = %d on a fresh session", s.Failed())
	}
	s.Record("q__0", ResponseRecord{IsCorrect: false})
	s.Record("q__1", ResponseRecord{IsCorrect: true})
	if s.Failed() != 1 {
		t.Fatalf("failed = %d, want 1", s.Failed())
	}
}

func TestQuestionCorrectText(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want string
	}{
		{name: "valid index", q: Question{Options: []string{"Paris", "Lyon"}, CorrectIndex: 1, CorrectAnswer: "x"}, want: "Lyon"},
		{name: "unresolved", q: Question{Options: []string{"Paris"}, CorrectIndex: -1, CorrectAnswer: "Marseille"}, want: "Marseille"},
		{name: "out of range", q: Question{Options: []string{"Paris"}, CorrectIndex: 5, CorrectAnswer: "Nice"}, want: "Nice"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.q.CorrectText(); got != tc.want {
				t.Fatalf("CorrectText() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestQuestionHasExplanation(t *testing.T) {
	if (&Question{Explanation: "  \n"}).HasExplanation() {
		t.Fatalf("blank explanation should not count")
	}
	if !(&Question{Explanation: "because"}).HasExplanation() {
		t.Fatalf("non-blank explanation should count")
	}
}

func TestSettingsApply(t *testing.T) {
	got := DefaultSettings().Apply(map[string]bool{
		SettingShuffleOptions: false,
		SettingShowProgress:   false,
		"unknown":             false,
	})

	want := Settings{ShowProgress: false, ShuffleOptions: false, ShowExplanation: true, ShuffleQuestions: true}
	if got != want {
		t.Fatalf("Apply() = %+v, want %+v", got, want)
	}
}
