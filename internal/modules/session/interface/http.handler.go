package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cachetteWeb/internal/modules/session/application/port"
	"cachetteWeb/internal/modules/session/application/usecase"
	"cachetteWeb/internal/shared/httputil"
)

const sessionContextKey = "sessionID"

// CookieConfig carries the session cookie settings from main.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// EnsureSessionCookie issues an opaque session id cookie on first contact
// and exposes the id to downstream handlers. The id is only a key into the
// server-side store; nothing sensitive rides in the cookie itself.
func EnsureSessionCookie(cfg CookieConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cfg.Name)
			if err != nil || cookie.Value == "" {
				cookie = &http.Cookie{
					Name:     cfg.Name,
					Value:    uuid.NewString(),
					Path:     "/",
					MaxAge:   int(cfg.TTL.Seconds()),
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				}
				c.SetCookie(cookie)
			}
			c.Set(sessionContextKey, cookie.Value)
			return next(c)
		}
	}
}

// SessionID reads the session id the middleware stored on the context.
func SessionID(c echo.Context) string {
	if id, ok := c.Get(sessionContextKey).(string); ok {
		return id
	}
	return ""
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

type identityResponse struct {
	LoggedIn   bool   `json:"loggedIn"`
	Admin      bool   `json:"admin"`
	Role       string `json:"role"`
	AdminLabel string `json:"adminLabel,omitempty"`
	User       any    `json:"user,omitempty"`
}

// Handler exposes the session JSON surface the pages consume.
type Handler struct {
	Login    *usecase.LoginUseCase
	Register *usecase.RegisterUseCase
	Logout   *usecase.LogoutUseCase
	Resolver *usecase.IdentityResolver
	mapper   *httputil.ErrorMapper
}

func NewHandler(login *usecase.LoginUseCase, register *usecase.RegisterUseCase, logout *usecase.LogoutUseCase, resolver *usecase.IdentityResolver) *Handler {
	mapper := httputil.NewErrorMapper().
		WithMapping(usecase.ErrMissingCredentials, http.StatusBadRequest, "email and password are required").
		WithMapping(usecase.ErrIncompleteRegistration, http.StatusBadRequest, "registration form is incomplete").
		WithMapping(port.ErrBadCredentials, http.StatusUnauthorized, "invalid email or password").
		WithMapping(port.ErrEmailTaken, http.StatusConflict, "this email is already registered").
		WithMapping(port.ErrAuthUnavailable, http.StatusBadGateway, "authentication service unavailable, please retry").
		WithMapping(port.ErrMalformedAuthRes, http.StatusBadGateway, "authentication service returned an unexpected response").
		WithDefault(http.StatusInternalServerError, "internal server error")
	return &Handler{Login: login, Register: register, Logout: logout, Resolver: resolver, mapper: mapper}
}

// RegisterRoutes mounts the session endpoints on the given group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/login", h.handleLogin)
	g.POST("/register", h.handleRegister)
	g.POST("/logout", h.handleLogout)
	g.GET("/me", h.handleMe)
}

func (h *Handler) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed login payload")
	}

	output, err := h.Login.Execute(c.Request().Context(), usecase.LoginInput{
		SessionID: SessionID(c),
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(http.StatusOK, identityResponse{
		LoggedIn:   true,
		Admin:      output.User.IsAdmin(),
		Role:       output.User.RoleOrDefault(),
		AdminLabel: output.User.AdminLabel(),
		User:       output.User,
	})
}

func (h *Handler) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed registration payload")
	}

	output, err := h.Register.Execute(c.Request().Context(), usecase.RegisterInput{
		SessionID: SessionID(c),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(http.StatusCreated, identityResponse{
		LoggedIn: true,
		Admin:    output.User.IsAdmin(),
		Role:     output.User.RoleOrDefault(),
		User:     output.User,
	})
}

func (h *Handler) handleLogout(c echo.Context) error {
	if err := h.Logout.Execute(c.Request().Context(), SessionID(c)); err != nil {
		return h.renderError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) handleMe(c echo.Context) error {
	identity, err := h.Resolver.Resolve(c.Request().Context(), SessionID(c))
	if err != nil {
		return h.renderError(c, err)
	}

	response := identityResponse{
		LoggedIn:   identity.LoggedIn,
		Admin:      identity.Admin,
		Role:       identity.Role,
		AdminLabel: identity.AdminLabel,
	}
	if identity.LoggedIn && identity.User.HasIdentity() {
		response.User = identity.User
	}
	return c.JSON(http.StatusOK, response)
}

func (h *Handler) renderError(c echo.Context, err error) error {
	info := h.mapper.Map(err)
	if info.Status >= http.StatusInternalServerError {
		slog.Error("session handler error", slog.Any("error", err))
	}
	return echo.NewHTTPError(info.Status, info.Message)
}
