package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/dto"
	"github.com/GlebRadaev/gamemarket/pkg/auth"
	"github.com/GlebRadaev/gamemarket/pkg/oauth"
	"github.com/GlebRadaev/gamemarket/pkg/utils"
)

const stateCookie = "oauth_state"

type Service interface {
	Register(ctx context.Context, email, password, firstName, lastName, role string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
	Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	ResolveExternalProfile(ctx context.Context, profile domain.ExternalProfile) (*domain.User, error)
}

type OAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*domain.ExternalProfile, error)
}

type Options struct {
	TokenTTL     time.Duration
	CookieSecure bool
	FrontendURL  string
}

type AuthHandler struct {
	authService Service
	google      OAuthProvider
	opts        Options
}

// New builds the handler. google may be nil when Google sign-in is not configured.
func New(authService Service, google OAuthProvider, opts Options) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		google:      google,
		opts:        opts,
	}
}

// Signup godoc
//
//	@Summary		Register a new user
//	@Description	Create a buyer or seller account and start a session
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SignupRequestDTO	true	"Signup request body"
//	@Success		201		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Role cannot be self-assigned"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/users/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	user, err := h.authService.Register(r.Context(), req.Email, req.Password, req.FirstName, req.LastName, req.Role)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	h.startSession(w, http.StatusCreated, user)
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		403		{object}	utils.Response	"Account is deactivated"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/users/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	h.startSession(w, http.StatusOK, user)
}

func (h *AuthHandler) startSession(w http.ResponseWriter, code int, user *domain.User) {
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	auth.SetTokenCookie(w, token, h.opts.TokenTTL, h.opts.CookieSecure)
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, code, dto.AuthResponseDTO{
		Status: utils.StatusSuccess,
		Token:  token,
		User:   dto.NewUserResponse(user),
	})
}

// Logout godoc
//
//	@Summary	Log out
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Router		/api/v1/users/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearTokenCookie(w, h.opts.CookieSecure)
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Status: utils.StatusSuccess, Message: "Logged out successfully"})
}

// Profile godoc
//
//	@Summary	Current user
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	dto.ProfileResponseDTO
//	@Failure	401	{object}	utils.Response	"Not authorized"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/v1/users/profile [get]
//	@Security	BearerAuth
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	user, err := h.authService.Profile(r.Context(), id.UserID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{Status: utils.StatusSuccess, User: dto.NewUserResponse(user)})
}

// GoogleLogin godoc
//
//	@Summary	Start Google sign-in
//	@Tags		Auth
//	@Success	307	{string}	string	"Redirect"
//	@Failure	503	{object}	utils.Response	"Google sign-in is not configured"
//	@Router		/api/v1/auth/google [get]
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if h.google == nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Google sign-in is not configured")
		return
	}
	state := oauth.NewState()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   h.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.google.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GoogleCallback godoc
//
//	@Summary	Finish Google sign-in
//	@Tags		Auth
//	@Param		state	query	string	true	"OAuth state"
//	@Param		code	query	string	true	"Authorization code"
//	@Success	307	{string}	string	"Redirect"
//	@Failure	401	{object}	utils.Response	"Invalid OAuth state"
//	@Failure	403	{object}	utils.Response	"Account is deactivated"
//	@Router		/api/v1/auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if h.google == nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Google sign-in is not configured")
		return
	}
	c, err := r.Cookie(stateCookie)
	if err != nil || c.Value == "" || c.Value != r.URL.Query().Get("state") {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid OAuth state")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Value: "", Path: "/", MaxAge: -1})

	profile, err := h.google.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	user, err := h.authService.ResolveExternalProfile(r.Context(), *profile)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	auth.SetTokenCookie(w, token, h.opts.TokenTTL, h.opts.CookieSecure)
	http.Redirect(w, r, h.opts.FrontendURL, http.StatusTemporaryRedirect)
}
