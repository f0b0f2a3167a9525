package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/inventory-management/internal"
	"github.com/frahmantamala/inventory-management/internal/transport"
	"github.com/frahmantamala/inventory-management/pkg/logger"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (TokenPair, error)
	RefreshTokens(oldToken string) (TokenPair, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, err := h.Service.Authenticate(dto)
	if err != nil {
		h.Logger.Error("authentication failed", "username", dto.Username, "error", err)

		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Login successful", tokens)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var dto RefreshTokenDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	tokens, err := h.Service.RefreshTokens(dto.Token)
	if err != nil {
		h.Logger.Error("token refresh failed", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Token refreshed successfully", tokens)
}

// AuthMiddleware verifies the bearer token and puts the authenticated user
// into the request context.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "Unauthorized access. Token missing or malformed.")
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			if appErr, ok := internal.IsAppError(err); ok {
				h.WriteError(w, http.StatusUnauthorized, appErr.Message)
			} else {
				h.WriteError(w, http.StatusUnauthorized, "Invalid or expired token.")
			}
			return
		}

		user := &AuthUser{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		}

		ctx := ContextWithUser(r.Context(), user)
		ctx = logger.With(ctx, "user_id", user.UserID, "role", user.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates mutation endpoints to admin accounts. Must run after
// AuthMiddleware.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(h.BaseHandler, RoleAdmin)(next)
}

// RequireRole builds a middleware that rejects requests from users whose
// role differs from the wanted one.
func RequireRole(base *transport.BaseHandler, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				base.WriteError(w, http.StatusUnauthorized, "Unauthorized access. Token missing or malformed.")
				return
			}

			if user.Role != role {
				base.Logger.Warn("access denied: wrong role",
					"user_id", user.UserID,
					"role", user.Role,
					"required_role", role)
				base.WriteError(w, http.StatusForbidden, "Access denied. You are not a "+role+".")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
