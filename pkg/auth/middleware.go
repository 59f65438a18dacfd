package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/pkg/utils"
)

const CookieName = "jwt"

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID uuid.UUID
	Role   domain.Role
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// Caller returns the identity stored by Authenticate, writing 401 when there is none.
func Caller(w http.ResponseWriter, r *http.Request) (Identity, bool) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
	}
	return id, ok
}

type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type Middleware struct {
	jwtService JWTServiceInterface
	users      UserFinder
}

func NewMiddleware(jwtService JWTServiceInterface, users UserFinder) *Middleware {
	return &Middleware{
		jwtService: jwtService,
		users:      users,
	}
}

// TokenFromRequest reads the session token from the jwt cookie, falling back to a bearer header.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// Authenticate resolves the caller from the token and reloads the account, so a deactivated
// user is rejected even with an unexpired token.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)
		if token == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}
		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}
		user, err := m.users.FindByID(r.Context(), claims.ID())
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if user == nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "User not found")
			return
		}
		if !user.IsActive {
			utils.RespondWithError(w, http.StatusForbidden, "Account is deactivated")
			return
		}

		ctx := WithIdentity(r.Context(), Identity{UserID: user.ID, Role: user.Role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole lets the request through only when the caller holds one of roles.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
				return
			}
			if !id.Role.In(roles...) {
				utils.RespondWithError(w, http.StatusForbidden, "Access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func SetTokenCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearTokenCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
