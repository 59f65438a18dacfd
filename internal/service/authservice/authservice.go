package authservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/notify"
	"github.com/GlebRadaev/gamemarket/pkg/auth"
	"github.com/GlebRadaev/gamemarket/pkg/metrics"
)

const providerLocal = "local"

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	LinkGoogleAccount(ctx context.Context, id uuid.UUID, googleID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	notifier    notify.NotifierI
	tokenTTL    time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, notifier notify.NotifierI, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		notifier:    notifier,
		tokenTTL:    tokenTTL,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, email, password, firstName, lastName, role string) (*domain.User, error) {
	userRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}
	if !userRole.SelfAssignable() {
		return nil, fmt.Errorf("%w: admin accounts cannot be created via signup", domain.ErrForbidden)
	}

	email = normalizeEmail(email)
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, fmt.Errorf("%w: user with this email already exists", domain.ErrConflict)
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		if errors.Is(err, auth.ErrEmptyPassword) || errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
		}
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Role:         userRole,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues(providerLocal).Inc()
	s.notifier.Notify(ctx, notify.SignupEvent(newUser, providerLocal))
	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	// accounts created through Google have no password
	if user == nil || user.PasswordHash == "" || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is deactivated", domain.ErrForbidden)
	}
	zap.L().Info("user successfully authenticated", zap.String("email", user.Email))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(user.ID, user.Role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", domain.ErrNotFound)
	}
	return user, nil
}

// ResolveExternalProfile finds the account for an identity provider login. It matches by
// provider subject first, then links an existing account with the same email, and otherwise
// creates a new buyer.
func (s *Service) ResolveExternalProfile(ctx context.Context, profile domain.ExternalProfile) (*domain.User, error) {
	if profile.SubjectID == "" {
		return nil, fmt.Errorf("%w: identity provider returned no subject", domain.ErrValidation)
	}

	user, err := s.userRepo.FindByGoogleID(ctx, profile.SubjectID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return activeOnly(user)
	}

	email := normalizeEmail(profile.Email)
	if email != "" {
		user, err = s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if user != nil {
			linked, err := s.userRepo.LinkGoogleAccount(ctx, user.ID, profile.SubjectID)
			if err != nil {
				return nil, err
			}
			if linked == nil {
				return nil, fmt.Errorf("%w: user not found", domain.ErrNotFound)
			}
			zap.L().Info("google account linked", zap.String("email", email))
			return activeOnly(linked)
		}
	}

	newUser, err := s.userRepo.Create(ctx, &domain.User{
		Email:         email,
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		GoogleID:      profile.SubjectID,
		OAuthProvider: profile.Provider,
		Role:          domain.DefaultRole,
	})
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues(profile.Provider).Inc()
	s.notifier.Notify(ctx, notify.SignupEvent(newUser, profile.Provider))
	zap.L().Info("user registered via identity provider", zap.String("provider", profile.Provider))
	return newUser, nil
}

func activeOnly(user *domain.User) (*domain.User, error) {
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is deactivated", domain.ErrForbidden)
	}
	return user, nil
}
