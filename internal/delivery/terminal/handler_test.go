package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
	"github.com/aliskhannn/quiz-runner/internal/repository"
	"github.com/aliskhannn/quiz-runner/internal/service"
)

func noShuffle(int, func(i, j int)) {}

func newQuiz() *service.QuizService {
	set := &entities.QuestionSet{
		Settings: entities.Settings{ShowProgress: true, ShowExplanation: true},
		Questions: []entities.Question{
			{UID: "q__0", Text: "First", Options: []string{"A", "B"}, CorrectIndex: 0},
			{UID: "q__1", Text: "Second", Options: []string{"C", "D"}, CorrectIndex: 1, Explanation: "D it is"},
		},
	}
	return service.NewQuizService(set, noShuffle, nil)
}

func run(t *testing.T, h *Handler) {
	t.Helper()
	if err := h.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestHandlerPlaysFullQuiz(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("1\na\nn\n1\na\nn\nq\n")

	run(t, NewHandler(in, &out, nil, newQuiz(), nil))

	got := out.String()
	for _, want := range []string{
		"Question 1 / 2",
		"1) [x] A",
		"Correct\n",
		"Incorrect - Correct answer: D",
		"Explanation: D it is",
		"End of quiz",
		"Score: 1 / 2",
		"Score: 1  Answered: 2  Total: 2  Fails: 1",
		msgBye,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestHandlerRefusesDisabledCommands(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("n\np\na\n7\nfoo\nq\n")

	quiz := newQuiz()
	run(t, NewHandler(in, &out, nil, quiz, nil))

	got := out.String()
	for _, want := range []string{msgCommandDisabled, msgSelectFirst, msgInvalidOption, msgUnknownCommand} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if v := quiz.View(); v.Answered != 0 || quiz.Session().Position() != 0 {
		t.Fatalf("state changed by refused commands: %+v", v)
	}
}

func TestHandlerRestart(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("2\na\nr\n")

	quiz := newQuiz()
	run(t, NewHandler(in, &out, nil, quiz, nil))

	if v := quiz.View(); v.Answered != 0 || v.Failed != 0 || v.Result != nil {
		t.Fatalf("restart did not reset the session: %+v", v)
	}
}

func TestHandlerShowsLoadError(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("1\nh\nq\n")
	loadErr := &repository.LoadError{Source: "GP_2.json", Cause: repository.ErrMissingQuestions}

	run(t, NewHandler(in, &out, nil, nil, loadErr))

	got := out.String()
	for _, want := range []string{"Failed to load.", "Could not start the quiz.", "Detail: load GP_2.json", msgQuizUnavailable, "Commands:"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if !strings.Contains(got, "- - - - [q]uit") {
		t.Fatalf("controls should all be disabled:\n%s", got)
	}
}

func TestHandlerStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewHandler(strings.NewReader(""), &out, nil, newQuiz(), nil).Run(ctx)
	if err != nil && err != context.Canceled {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestDecodeCommand(t *testing.T) {
	tests := []struct {
		input  string
		action string
		option int
	}{
		{input: " 3 ", action: actionSelect, option: 3},
		{input: "A", action: actionAnswer},
		{input: "next", action: actionNext},
		{input: "previous", action: actionPrev},
		{input: "R", action: actionRestart},
		{input: "?", action: actionHelp},
		{input: "exit", action: actionQuit},
		{input: "", action: actionNone},
		{input: "jump", action: actionUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := decodeCommand(tc.input)
			if got.Action != tc.action || got.Option != tc.option {
				t.Fatalf("decodeCommand(%q) = %+v, want action %q option %d", tc.input, got, tc.action, tc.option)
			}
		})
	}
}
