package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eventlane/eventlane-server/internal/api/http/handler"
	"github.com/eventlane/eventlane-server/internal/api/http/middleware"
	"github.com/eventlane/eventlane-server/internal/logger"
	"github.com/eventlane/eventlane-server/internal/model"
)

// Router assembles the HTTP surface: auth endpoints, protected event and
// session routes behind the authentication gate, the public weather route
// and metrics.
type Router struct {
	authService    handler.AuthService
	eventService   handler.EventService
	sessionService handler.SessionService
	weather        model.WeatherProvider
	provider       model.IdentityProvider
	userStore      model.UserStore
	sessionStore   model.SessionStore
	contextManager model.ContextManager
	registry       *prometheus.Registry
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	eventService handler.EventService,
	sessionService handler.SessionService,
	weather model.WeatherProvider,
	provider model.IdentityProvider,
	userStore model.UserStore,
	sessionStore model.SessionStore,
	contextManager model.ContextManager,
	registry *prometheus.Registry,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		eventService:   eventService,
		sessionService: sessionService,
		weather:        weather,
		provider:       provider,
		userStore:      userStore,
		sessionStore:   sessionStore,
		contextManager: contextManager,
		registry:       registry,
		logger:         logger,
	}
}

// Register wires all routes and middleware and returns the root handler.
func (r *Router) Register() http.Handler {
	authHandler := handler.NewAuth(r.authService, r.logger)
	eventHandler := handler.NewEvent(r.eventService, r.weather, r.contextManager, r.logger)
	sessionHandler := handler.NewSession(r.sessionService, r.contextManager, r.logger)
	weatherHandler := handler.NewWeather(r.weather, r.logger)

	gate := middleware.NewAuthenticate(r.provider, r.userStore, r.sessionStore, r.contextManager, r.logger)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)

	protected := func(h http.HandlerFunc) http.Handler {
		return gate.Handle(h)
	}

	mux.Handle("POST /api/events", protected(eventHandler.Create))
	mux.Handle("GET /api/events", protected(eventHandler.List))
	mux.Handle("PUT /api/events/{id}", protected(eventHandler.Update))
	mux.Handle("DELETE /api/events/{id}", protected(eventHandler.Delete))
	mux.Handle("GET /api/events/weather/{location}", protected(eventHandler.Weather))

	mux.Handle("GET /api/sessions", protected(sessionHandler.List))
	mux.Handle("GET /api/sessions/current", protected(sessionHandler.Current))

	mux.HandleFunc("GET /api/weather/{location}", weatherHandler.Current)

	var root http.Handler = mux

	if r.registry != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
		root = middleware.NewMetrics(r.registry).Handle(root)
	}

	return middleware.NewLogging(r.logger).Handle(root)
}
