package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Harish050696/cardvault/internal/api/http/handler"
	"github.com/Harish050696/cardvault/internal/api/http/httpctx"
	"github.com/Harish050696/cardvault/internal/api/http/middleware"
	"github.com/Harish050696/cardvault/internal/logger"
	"github.com/Harish050696/cardvault/internal/model"
	"github.com/Harish050696/cardvault/internal/session"
)

// Router wires handlers and middleware into the HTTP route tree.
type Router struct {
	sessions       *session.Manager
	tokens         model.TokenManager
	contextManager *httpctx.Manager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	sessions *session.Manager,
	tokens model.TokenManager,
	contextManager *httpctx.Manager,
	logger *logger.Logger,
) *Router {
	return &Router{
		sessions:       sessions,
		tokens:         tokens,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the route tree. Login and the health check are public;
// everything else sits behind the session token middleware.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.sessions, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.sessions, r.tokens, r.contextManager, r.logger)
	cardHandler := handler.NewCard(r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(chimiddleware.Recoverer)
	mux.Use(logging.Handle)

	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.Post("/auth/login", authHandler.Login)

	mux.Group(func(mux chi.Router) {
		mux.Use(authenticate.Handle)

		mux.Post("/auth/logout", authHandler.Logout)

		mux.Route("/cards", func(mux chi.Router) {
			mux.Post("/", cardHandler.Upload)
			mux.Get("/", cardHandler.List)
			mux.Get("/{id}", cardHandler.Get)
			mux.Get("/{id}/image", cardHandler.Image)
			mux.Put("/{id}/select", cardHandler.Select)
			mux.Delete("/{id}", cardHandler.Delete)
		})
	})

	return mux
}
