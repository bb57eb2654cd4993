package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/apitrail/apitrail/internal/catalog"
	"github.com/apitrail/apitrail/internal/service"
	"github.com/apitrail/apitrail/internal/store"
	"github.com/apitrail/apitrail/pkg/httpx"
	"github.com/apitrail/apitrail/pkg/jwtx"
	"github.com/apitrail/apitrail/pkg/slogx"

	_ "github.com/apitrail/apitrail/api/apitrail" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store    store.Store
	Accounts *service.AccountService
	Progress *service.ProgressService
	Levels   *catalog.Catalog
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProgress()
	r.registerLevels()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			API Trail
//	@version		0.1.0
//	@description	A hands-on REST tutorial service. Work through the lesson levels,
//	@description	create an account, and track your progress against the same API
//	@description	you are learning about.
//
//	@contact.name	API Trail Maintainers
//	@contact.url	https://github.com/apitrail/apitrail
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{Accounts: r.Accounts}
	loginHandler := &LoginHandler{Accounts: r.Accounts}
	meHandler := &MeHandler{Accounts: r.Accounts}

	// POST /auth/register - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP (credential endpoint)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /auth/me - authenticated profile read
	securedGet := httpx.Chain(http.HandlerFunc(meHandler.HandleGet),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	// DELETE /auth/me - authenticated account removal
	securedDelete := httpx.Chain(http.HandlerFunc(meHandler.HandleDelete),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /auth/me", securedGet)
	r.Mux.Handle("DELETE /auth/me", securedDelete)
}

func (r *Router) registerProgress() {
	h := &ProgressHandler{Progress: r.Progress}

	// GET /progress - authenticated read, moderate rate limit by user
	securedGet := httpx.Chain(http.HandlerFunc(h.HandleGet),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	// PUT /progress - authenticated full replace, moderate rate limit by user
	securedUpdate := httpx.Chain(http.HandlerFunc(h.HandleUpdate),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /progress", securedGet)
	r.Mux.Handle("PUT /progress", securedUpdate)
}

func (r *Router) registerLevels() {
	h := &LevelsHandler{Levels: r.Levels}

	// Public read-only catalog endpoints - high limit
	r.Mux.Handle("GET /levels",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /levels/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - high limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /health",
		httpx.Chain(HealthHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
