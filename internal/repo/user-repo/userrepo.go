package userrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/pg"
)

const selectUser = `
	SELECT u.id, COALESCE(u.email, ''), COALESCE(u.password, ''), u.first_name, u.last_name,
	       COALESCE(u.google_id, ''), COALESCE(u.oauth_provider, ''), COALESCE(r.name, 'buyer'),
	       u.is_active, u.created_at
	FROM users u
	LEFT JOIN roles r ON r.id = u.role_id
`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.GoogleID, &user.OAuthProvider, &user.Role, &user.IsActive, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) findOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, selectUser+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return repo.findOne(ctx, "WHERE u.email = $1", email)
}

func (repo *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return repo.findOne(ctx, "WHERE u.id = $1", id)
}

func (repo *Repository) FindByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return repo.findOne(ctx, "WHERE u.google_id = $1", googleID)
}

// LinkGoogleAccount attaches a Google subject id to an existing account.
func (repo *Repository) LinkGoogleAccount(ctx context.Context, id uuid.UUID, googleID string) (*domain.User, error) {
	query := `
		UPDATE users
		SET google_id = $2, oauth_provider = 'google', updated_at = NOW()
		WHERE id = $1
	`
	tag, err := repo.db.Exec(ctx, query, id, googleID)
	if err != nil {
		zap.L().Error("can't link google account", zap.Error(err))
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return repo.FindByID(ctx, id)
}

// Create stores the user together with a zero balance and an empty cart.
// All three rows are written in one transaction.
func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	insertUser := `
		INSERT INTO users (email, password, first_name, last_name, google_id, oauth_provider, role_id)
		VALUES (NULLIF($1, ''), NULLIF($2, ''), $3, $4, NULLIF($5, ''), NULLIF($6, ''),
		        (SELECT id FROM roles WHERE name = $7))
		RETURNING id, is_active, created_at
	`
	err := repo.txManager.Begin(ctx, func(ctx context.Context) error {
		err := repo.db.QueryRow(ctx, insertUser,
			user.Email, user.PasswordHash, user.FirstName, user.LastName,
			user.GoogleID, user.OAuthProvider, user.Role.String(),
		).Scan(&user.ID, &user.IsActive, &user.CreatedAt)
		if err != nil {
			if pg.IsUniqueViolation(err) {
				return fmt.Errorf("%w: email already registered", domain.ErrConflict)
			}
			return fmt.Errorf("insert user: %w", err)
		}
		if _, err = repo.db.Exec(ctx, "INSERT INTO user_balance (user_id) VALUES ($1)", user.ID); err != nil {
			return fmt.Errorf("insert balance: %w", err)
		}
		if _, err = repo.db.Exec(ctx, "INSERT INTO cart (user_id) VALUES ($1)", user.ID); err != nil {
			return fmt.Errorf("insert cart: %w", err)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
