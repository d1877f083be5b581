package server

import (
	"net/http"
	"regexp"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/sessions"
	"github.com/testgenius/testgenius/pkg/domain/interfaces"
	"github.com/testgenius/testgenius/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is encoded JSON or a fixed string
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

const defaultFrontendURL = "http://localhost:5173"

type config struct {
	frontendURL   string
	allowedOrigin *regexp.Regexp
	store         sessions.Store
	secureCookie  bool
}

type Option func(*config)

// WithFrontendURL sets where the browser is sent after the OAuth callback.
func WithFrontendURL(url string) Option {
	return func(cfg *config) {
		cfg.frontendURL = url
	}
}

// WithAllowedOrigin enables CORS with credentials for origins matching re.
func WithAllowedOrigin(re *regexp.Regexp) Option {
	return func(cfg *config) {
		cfg.allowedOrigin = re
	}
}

// WithSessionStore sets the signed cookie store holding the session ID and the
// OAuth state.
func WithSessionStore(store sessions.Store) Option {
	return func(cfg *config) {
		cfg.store = store
	}
}

func WithSecureCookie(secure bool) Option {
	return func(cfg *config) {
		cfg.secureCookie = secure
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		frontendURL: defaultFrontendURL,
	}
	for _, opt := range options {
		opt(cfg)
	}
	if cfg.store == nil {
		// Sessions signed with a per-process key do not survive a restart.
		cfg.store = sessions.NewCookieStore([]byte(uuid.NewString() + uuid.NewString()))
	}

	h := &handler{uc: uc, cfg: cfg}

	r := chi.NewRouter()
	r.Use(preProcess)
	if cfg.allowedOrigin != nil {
		r.Use(handlers.CORS(
			handlers.AllowedHeaders([]string{"content-type", "pragma", "cache-control"}),
			handlers.AllowedMethods([]string{"GET", "HEAD", "POST", "DELETE", "PUT"}),
			handlers.AllowedOriginValidator(cfg.allowedOrigin.MatchString),
			handlers.AllowCredentials(),
		))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/user", h.getUser)
		r.Post("/logout", h.logout)
		r.Get("/github/login", h.githubLogin)
		r.Get("/github/callback", h.githubCallback)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)

			r.Get("/github/repos", h.getRepos)
			r.Get("/github/files", h.getFiles)
			r.Post("/github/pr", h.createPullRequest)
			r.Post("/ai/summaries", h.generateSummaries)
			r.Post("/ai/code", h.generateCode)

			r.Route("/workflow", func(r chi.Router) {
				r.Get("/", h.workflowView)
				r.Get("/repos", h.workflowListRepositories)
				r.Post("/repo", h.workflowSelectRepository)
				r.Get("/files", h.workflowListFiles)
				r.Post("/files", h.workflowConfirmFiles)
				r.Post("/summaries", h.workflowRetrySummaries)
				r.Post("/code", h.workflowGenerateCode)
				r.Post("/pr", h.workflowCreatePullRequest)
				r.Post("/back", h.workflowBack)
				r.Post("/start-over", h.workflowStartOver)
				r.Delete("/error", h.workflowDismissError)
			})
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

type handler struct {
	uc  interfaces.UseCase
	cfg *config
}
