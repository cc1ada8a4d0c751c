package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/threadcraft/platform/pkg/binder"
	"github.com/threadcraft/platform/pkg/ratelimiter"
)

// response is the envelope every auth endpoint answers with.
type response struct {
	Success bool     `json:"success"`
	User    *Profile `json:"user,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Handler exposes the auth service over HTTP.
type Handler struct {
	svc     *Service
	log     *slog.Logger
	limiter *ratelimiter.Bucket
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithHandlerLogger routes transport logs through the given logger.
func WithHandlerLogger(log *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithLoginRateLimiter throttles login attempts per client IP. Nil disables
// throttling, which is only sensible in tests.
func WithLoginRateLimiter(b *ratelimiter.Bucket) HandlerOption {
	return func(h *Handler) {
		h.limiter = b
	}
}

// NewHandler creates the HTTP layer over a Service.
func NewHandler(svc *Service, opts ...HandlerOption) *Handler {
	if svc == nil {
		panic("auth: service is required")
	}

	h := &Handler{
		svc: svc,
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes mounts the three auth endpoints under /api/auth.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Route("/api/auth", func(r chi.Router) {
		if h.limiter != nil {
			r.With(ratelimiter.Middleware(h.limiter, ratelimiter.ByClientIP)).
				Post("/login", h.handleLogin)
		} else {
			r.Post("/login", h.handleLogin)
		}
		r.Post("/logout", h.handleLogout)
		r.With(h.sessionContext).Get("/me", h.handleMe)
	})
	return r
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := binder.DecodeJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Message: "Invalid request body"})
		return
	}

	user, token, err := h.svc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, response{Message: "Invalid credentials"})
			return
		}
		h.log.ErrorContext(r.Context(), "login failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, response{Message: "Internal server error"})
		return
	}

	h.setSessionCookie(w, token)
	profile := user.Profile()
	writeJSON(w, http.StatusOK, response{Success: true, User: &profile})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.svc.Config().CookieName); err == nil {
		if err := h.svc.Logout(r.Context(), cookie.Value); err != nil {
			h.log.WarnContext(r.Context(), "session cleanup failed", "error", err)
		}
	}

	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, response{Success: true})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, response{})
		return
	}

	profile := user.Profile()
	writeJSON(w, http.StatusOK, response{Success: true, User: &profile})
}

// sessionContext resolves the session cookie to a user and stores it in the
// request context. Requests without a live session are answered 401 here.
func (h *Handler) sessionContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.svc.Config().CookieName)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, response{})
			return
		}

		user, err := h.svc.Validate(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, ErrSessionNotFound) {
				h.log.ErrorContext(r.Context(), "session validation failed", "error", err)
			}
			h.clearSessionCookie(w)
			writeJSON(w, http.StatusUnauthorized, response{})
			return
		}

		next.ServeHTTP(w, r.WithContext(SetUserToContext(r.Context(), user)))
	})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	cfg := h.svc.Config()
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	cfg := h.svc.Config()
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
