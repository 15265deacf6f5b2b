package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-runner/internal/service"
)

var errNoQuiz = errors.New("no quiz loaded")

// Handler runs a quiz session over line-oriented input and output.
type Handler struct {
	in      io.Reader
	out     io.Writer
	logger  *zap.Logger
	quiz    QuizService
	loadErr error
}

// NewHandler creates a Handler. When loadErr is set, quiz may be nil and the
// handler only shows the error.
func NewHandler(in io.Reader, out io.Writer, logger *zap.Logger, quiz QuizService, loadErr error) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if quiz == nil && loadErr == nil {
		loadErr = errNoQuiz
	}
	return &Handler{
		in:      in,
		out:     out,
		logger:  logger,
		quiz:    quiz,
		loadErr: loadErr,
	}
}

// Loading prints the status shown while the question document is fetched.
func Loading(out io.Writer) {
	_, _ = fmt.Fprintln(out, msgLoadingQuestions)
}

// Run draws the current view and processes commands until quit, end of input
// or context cancellation.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("terminal handler started")
	defer h.logger.Info("terminal handler stopped")

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(h.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	h.draw()
	handle := h.withLogging(h.handleCommand)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return ctx.Err()
				}
			}

			cmd := decodeCommand(line)
			if cmd.Action == actionQuit {
				h.send(msgBye)
				return nil
			}

			if notice := handle(cmd); notice != "" {
				h.send(notice)
				continue
			}
			h.draw()
		}
	}
}

// handleCommand applies cmd and returns a notice to print instead of redrawing.
func (h *Handler) handleCommand(cmd command) string {
	switch cmd.Action {
	case actionNone:
		return ""
	case actionHelp:
		return msgHelp
	case actionUnknown:
		return msgUnknownCommand
	}

	if h.loadErr != nil || h.quiz == nil {
		return msgQuizUnavailable
	}

	view := h.quiz.View()

	switch cmd.Action {
	case actionSelect:
		if cmd.Option < 1 || cmd.Option > len(view.Options) {
			return msgInvalidOption
		}
		if !h.quiz.Select(view.Options[cmd.Option-1].Index) {
			return msgCommandDisabled
		}

	case actionAnswer:
		if !view.Controls.Answer {
			if view.Result == nil && !view.Finished {
				return msgSelectFirst
			}
			return msgCommandDisabled
		}
		if _, ok := h.quiz.Answer(); !ok {
			return msgCommandDisabled
		}

	case actionNext:
		if !view.Controls.Next || !h.quiz.Next() {
			return msgCommandDisabled
		}

	case actionPrev:
		if !view.Controls.Prev || !h.quiz.Prev() {
			return msgCommandDisabled
		}

	case actionRestart:
		h.quiz.Restart()
	}

	return ""
}

func (h *Handler) currentView() service.View {
	if h.loadErr != nil || h.quiz == nil {
		return service.ErrorView(h.loadErr)
	}
	return h.quiz.View()
}

func (h *Handler) draw() {
	h.send(renderView(h.currentView()))
}

func (h *Handler) send(text string) {
	if _, err := fmt.Fprintln(h.out, text); err != nil {
		h.logger.Error("failed to write to terminal",
			zap.Error(err),
		)
	}
}
