package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/talentwire/jobconnect/internal/connector/service"
	"github.com/talentwire/jobconnect/internal/connector/store"
	"github.com/talentwire/jobconnect/pkg/httpx"
	"github.com/talentwire/jobconnect/pkg/slogx"

	_ "github.com/talentwire/jobconnect/api/connector" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	devMode      bool
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	OTPService      *service.OTPService
	IdentityService *service.IdentityService
	ProfileService  *service.ProfileService
	JobService      *service.JobService
}

func NewRouter(buildVersion string, devMode bool, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		devMode:      devMode,
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
	r.registerProfiles()
	r.registerJobs()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Job Connector API
//	@version		0.1.0
//	@description	REST backend connecting job seekers with job providers. Identity
//	@description	is established per request through one-time codes delivered over
//	@description	WhatsApp or email; there are no sessions or bearer tokens.
//
//	@contact.name	TalentWire Team
//	@contact.url	https://github.com/talentwire/jobconnect
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /request-otp - strict rate limit (each request triggers a delivery)
	requestHandler := &RequestOTPHandler{OTPService: r.OTPService, DevMode: r.devMode}
	r.Mux.Handle("POST /v1/auth/request-otp",
		httpx.Chain(requestHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /verify-otp - strict rate limit (code guessing attempts)
	verifyHandler := &VerifyOTPHandler{OTPService: r.OTPService}
	r.Mux.Handle("POST /v1/auth/verify-otp",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerProfiles() {
	seekerHandler := &SeekerProfileHandler{ProfileService: r.ProfileService}
	providerHandler := &ProviderProfileHandler{ProfileService: r.ProfileService}
	getHandler := &GetProfileHandler{IdentityService: r.IdentityService}

	// Profile writes - moderate rate limit (registration endpoints)
	r.Mux.Handle("POST /v1/profile/seeker",
		httpx.Chain(http.HandlerFunc(seekerHandler.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /v1/profile/seeker",
		httpx.Chain(http.HandlerFunc(seekerHandler.HandleUpdate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/profile/provider",
		httpx.Chain(http.HandlerFunc(providerHandler.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /v1/profile/provider",
		httpx.Chain(http.HandlerFunc(providerHandler.HandleUpdate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /profile - lenient rate limit (read-only lookup)
	r.Mux.Handle("GET /v1/profile",
		httpx.Chain(getHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerJobs() {
	h := &JobsHandler{JobService: r.JobService}

	r.Mux.Handle("POST /v1/jobs",
		httpx.Chain(http.HandlerFunc(h.HandlePost),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/jobs",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/jobs/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/jobs/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health endpoints - public rate limit (hit by orchestrators)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
