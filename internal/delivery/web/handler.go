package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-runner/internal/service"
)

var errNoQuiz = errors.New("no quiz loaded")

const shutdownTimeout = 5 * time.Second

// Handler serves a single quiz session over HTTP.
type Handler struct {
	mu      sync.Mutex
	quiz    QuizService
	loadErr error
	logger  *zap.Logger
}

// NewHandler creates a Handler. When loadErr is set, quiz may be nil and every
// page shows the error.
func NewHandler(quiz QuizService, loadErr error, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if quiz == nil && loadErr == nil {
		loadErr = errNoQuiz
	}
	return &Handler{
		quiz:    quiz,
		loadErr: loadErr,
		logger:  logger,
	}
}

// Routes returns the router for the quiz page and its actions.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Get("/", h.page)
	r.Get("/view", h.view)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/answer", h.action(h.answer))
	r.Post("/next", h.action(func(q QuizService, _ *http.Request) { q.Next() }))
	r.Post("/prev", h.action(func(q QuizService, _ *http.Request) { q.Prev() }))
	r.Post("/restart", h.action(func(q QuizService, _ *http.Request) { q.Restart() }))

	return r
}

// Run serves the routes on addr until ctx is cancelled.
func (h *Handler) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("web handler listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	h.logger.Info("web handler stopped")
	return nil
}

func (h *Handler) page(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	v := h.currentView()
	h.mu.Unlock()

	var buf bytes.Buffer
	if err := renderPage(&buf, v); err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) view(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	v := h.currentView()
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode view", zap.Error(err))
	}
}

// action wraps a state change: it refuses when nothing is loaded and
// redirects back to the page otherwise.
func (h *Handler) action(fn func(q QuizService, r *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		if h.loadErr != nil || h.quiz == nil {
			h.mu.Unlock()
			http.Error(w, "quiz unavailable", http.StatusConflict)
			return
		}
		fn(h.quiz, r)
		h.mu.Unlock()

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (h *Handler) answer(q QuizService, r *http.Request) {
	idx, err := strconv.Atoi(r.FormValue("option"))
	if err != nil {
		return
	}
	if !q.Select(idx) {
		return
	}
	q.Answer()
}

func (h *Handler) currentView() service.View {
	if h.loadErr != nil || h.quiz == nil {
		return service.ErrorView(h.loadErr)
	}
	return h.quiz.View()
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		h.logger.Debug("http request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
