package router

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/wellywell/washboard/internal/compress"
	"github.com/wellywell/washboard/internal/handlers"
	"github.com/wellywell/washboard/internal/session"
)

const (
	compressLevel   = 5
	shutdownTimeout = 5 * time.Second
)

type Router struct {
	address string
	router  *chi.Mux
}

func NewRouter(address string, h *handlers.HandlerSet, sessions *session.Manager) *Router {

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(AccessLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(compressLevel))
	r.Use(compress.UngzipRequest)
	r.Use(sessions.Middleware)

	r.Post("/api/login", h.HandleLogin)
	r.Post("/api/logout", h.HandleLogout)

	r.Group(func(r chi.Router) {

		r.Use(h.RequireAuth)
		r.Get("/api/me", h.HandleMe)
		r.Get("/api/dashboard", h.HandleDashboard)

		r.Route("/api/students", func(r chi.Router) {
			r.Get("/", h.HandleListStudents)
			r.Post("/", h.HandleCreateStudent)
			r.Put("/{bagNo}", h.HandleUpdateStudent)
			r.Delete("/{bagNo}", h.HandleDeleteStudent)
			r.Get("/{bagNo}/orders", h.HandleStudentOrders)
		})

		r.Route("/api/washermen", func(r chi.Router) {
			r.Get("/", h.HandleListWashermen)
			r.Post("/", h.HandleCreateWasherman)
			r.Put("/{id}", h.HandleUpdateWasherman)
			r.Delete("/{id}", h.HandleDeleteWasherman)
		})

		r.Route("/api/orders", func(r chi.Router) {
			r.Get("/", h.HandleListOrders)
			r.Post("/", h.HandleCreateOrder)
			r.Get("/pending", h.HandlePendingOrders)
			r.Get("/export", h.HandleExportOrders)
			r.Put("/{id}/status", h.HandleSetOrderStatus)
			r.Post("/{id}/advance", h.HandleAdvanceOrder)
			r.Put("/{id}/count", h.HandleSetOrderCount)
			r.Get("/{id}/transitions", h.HandleOrderTransitions)
			r.Delete("/{id}", h.HandleDeleteOrder)
		})
	})

	return &Router{router: r, address: address}
}

func (r *Router) Handler() http.Handler {
	return r.router
}

// Run serves until ctx is cancelled, then shuts the server down.
func (r *Router) Run(ctx context.Context) error {
	srv := &http.Server{Addr: r.address, Handler: r.router}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
