package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/educonnect/portal/internal/portal/service"
	"github.com/educonnect/portal/internal/portal/store"
	"github.com/educonnect/portal/pkg/httpx"
	"github.com/educonnect/portal/pkg/slogx"

	_ "github.com/educonnect/portal/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AuthService      *service.AuthService
	KycService       *service.KycService
	SolutionService  *service.SolutionService
	OrderService     *service.OrderService
	WhitelistService *service.WhitelistService
	LibraryService   *service.LibraryService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
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
	r.registerKyc()
	r.registerSolutions()
	r.registerOrders()
	r.registerAdmin()
	r.registerDashboard()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			EduConnect Portal API
//	@version		0.1.0
//	@description	Customer portal for EduConnect connectivity solutions: passwordless OTP login,
//	@description	KYC onboarding, solution configuration with catalog pricing, and order placement
//	@description	with simulated payment.
//
//	@contact.name				EduConnect Engineering
//	@contact.url				https://github.com/educonnect/portal
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
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// sessionValidator adapts AuthService to the authn middleware.
type sessionValidator struct {
	auth *service.AuthService
}

func (v sessionValidator) ValidateSession(ctx context.Context, token string) (httpx.Principal, error) {
	user, err := v.auth.ValidateSession(ctx, token)
	if err != nil {
		return httpx.Principal{}, err
	}
	return httpx.Principal{UserID: user.ID, Role: user.Role}, nil
}

func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(sessionValidator{auth: r.AuthService})
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// OTP endpoints are the brute-force surface; limit by IP + identifier.
	r.Mux.Handle("POST /api/auth/request-otp",
		httpx.Chain(http.HandlerFunc(h.HandleRequestOtp),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "phoneOrEmail"),
		),
	)
	r.Mux.Handle("POST /api/auth/verify-otp",
		httpx.Chain(http.HandlerFunc(h.HandleVerifyOtp),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "phoneOrEmail"),
		),
	)

	r.Mux.Handle("GET /api/auth/session",
		httpx.Chain(http.HandlerFunc(h.HandleSession),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	// Logout is idempotent and must succeed for stale or missing tokens,
	// so it skips the authn middleware.
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerKyc() {
	h := &KycHandler{KycService: r.KycService}

	r.Mux.Handle("POST /api/kyc/submit",
		httpx.Chain(http.HandlerFunc(h.HandleSubmit),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSolutions() {
	h := &SolutionsHandler{SolutionService: r.SolutionService}

	read := []httpx.Middleware{r.authn(), httpx.RateLimitByUser(httpx.LenientLimit)}
	write := []httpx.Middleware{r.authn(), httpx.RateLimitByUser(httpx.ModerateLimit)}

	r.Mux.Handle("GET /api/solutions", httpx.Chain(http.HandlerFunc(h.HandleList), read...))
	r.Mux.Handle("POST /api/solutions", httpx.Chain(http.HandlerFunc(h.HandleCreate), write...))
	r.Mux.Handle("GET /api/solutions/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), read...))
	r.Mux.Handle("PUT /api/solutions/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), write...))
	r.Mux.Handle("DELETE /api/solutions/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), write...))
}

func (r *Router) registerOrders() {
	h := &OrdersHandler{OrderService: r.OrderService}

	read := []httpx.Middleware{r.authn(), httpx.RateLimitByUser(httpx.LenientLimit)}
	write := []httpx.Middleware{r.authn(), httpx.RateLimitByUser(httpx.ModerateLimit)}

	r.Mux.Handle("GET /api/orders", httpx.Chain(http.HandlerFunc(h.HandleList), read...))
	r.Mux.Handle("POST /api/orders", httpx.Chain(http.HandlerFunc(h.HandleCreate), write...))
	r.Mux.Handle("GET /api/orders/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), read...))
	r.Mux.Handle("POST /api/orders/{id}/payment", httpx.Chain(http.HandlerFunc(h.HandlePayment), write...))
}

func (r *Router) registerAdmin() {
	wh := &WhitelistHandler{WhitelistService: r.WhitelistService}
	lh := &LibraryHandler{LibraryService: r.LibraryService}

	admin := func(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(h,
			r.authn(),
			httpx.RequireRole("admin"),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("GET /api/admin/whitelist", admin(wh.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /api/admin/whitelist", admin(wh.HandleAdd, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/admin/whitelist/{id}", admin(wh.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("GET /api/admin/whitelist/export", admin(wh.HandleExport, httpx.LenientLimit))
	r.Mux.Handle("POST /api/admin/whitelist/import", admin(wh.HandleImport, httpx.ModerateLimit))

	r.Mux.Handle("GET /api/admin/library", admin(lh.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /api/admin/library", admin(lh.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PUT /api/admin/library/{id}", admin(lh.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/admin/library/{id}", admin(lh.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("GET /api/admin/library/export", admin(lh.HandleExport, httpx.LenientLimit))
	r.Mux.Handle("POST /api/admin/library/import", admin(lh.HandleImport, httpx.ModerateLimit))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{
		AuthService:      r.AuthService,
		SolutionService:  r.SolutionService,
		WhitelistService: r.WhitelistService,
		LibraryService:   r.LibraryService,
	}

	r.Mux.Handle("GET /api/dashboard/data",
		httpx.Chain(http.HandlerFunc(h.HandleData),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
