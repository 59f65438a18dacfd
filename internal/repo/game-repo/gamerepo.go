package gamerepo

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

const selectGame = `
	SELECT g.id, g.title, g.description, g.publisher, g.developer, g.release_date, g.image_url, g.created_at,
	       COALESCE(
	           json_agg(DISTINCT jsonb_build_object('id', p.id, 'name', p.name)) FILTER (WHERE p.id IS NOT NULL),
	           '[]'
	       ) AS platforms
	FROM games g
	LEFT JOIN game_platforms gp ON gp.game_id = g.id
	LEFT JOIN platforms p ON p.id = gp.platform_id
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

func scanGame(row pgx.Row) (*domain.Game, error) {
	var g domain.Game
	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.Publisher, &g.Developer,
		&g.ReleaseDate, &g.ImageURL, &g.CreatedAt, &g.Platforms)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func collectGames(rows pgx.Rows) ([]domain.Game, error) {
	defer rows.Close()

	games := make([]domain.Game, 0)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, *g)
	}
	return games, rows.Err()
}

// Create inserts the game and its platform links in one transaction, so a failed link
// never leaves a game without platforms behind.
func (r *Repository) Create(ctx context.Context, game *domain.Game, platformIDs []int) (*domain.Game, error) {
	insertGame := `
		INSERT INTO games (title, description, publisher, developer, release_date, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	linkPlatforms := `
		WITH linked AS (
			INSERT INTO game_platforms (game_id, platform_id)
			SELECT $1, platform_id FROM unnest($2::int[]) AS platform_id
			ON CONFLICT DO NOTHING
			RETURNING platform_id
		)
		SELECT p.id, p.name FROM platforms p JOIN linked l ON l.platform_id = p.id
		ORDER BY p.name
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, insertGame,
			game.Title, game.Description, game.Publisher, game.Developer, game.ReleaseDate, game.ImageURL,
		).Scan(&game.ID, &game.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert game: %w", err)
		}

		rows, err := r.db.Query(ctx, linkPlatforms, game.ID, platformIDs)
		if err != nil {
			return linkError(err)
		}
		defer rows.Close()

		game.Platforms = make([]domain.Platform, 0, len(platformIDs))
		for rows.Next() {
			var p domain.Platform
			if err := rows.Scan(&p.ID, &p.Name); err != nil {
				return fmt.Errorf("scan platform: %w", err)
			}
			game.Platforms = append(game.Platforms, p)
		}
		if err := rows.Err(); err != nil {
			return linkError(err)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't create game", zap.Error(err))
		return nil, err
	}
	return game, nil
}

func linkError(err error) error {
	if pg.IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: unknown platform", domain.ErrValidation)
	}
	return fmt.Errorf("link platforms: %w", err)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	game, err := scanGame(r.db.QueryRow(ctx, selectGame+"WHERE g.id = $1 GROUP BY g.id", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get game", zap.Error(err))
		return nil, err
	}
	return game, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.Game, error) {
	rows, err := r.db.Query(ctx, selectGame+"GROUP BY g.id ORDER BY g.title ASC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		zap.L().Error("failed to list games", zap.Error(err))
		return nil, err
	}
	return collectGames(rows)
}

// Search matches titles by substring or trigram similarity, best match first.
func (r *Repository) Search(ctx context.Context, query string, limit int) ([]domain.Game, error) {
	where := `
		WHERE g.title ILIKE '%' || $1 || '%' OR g.title % $1
		GROUP BY g.id
		ORDER BY similarity(g.title, $1) DESC, g.created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, selectGame+where, query, limit)
	if err != nil {
		zap.L().Error("failed to search games", zap.Error(err))
		return nil, err
	}
	return collectGames(rows)
}

func (r *Repository) ListPlatforms(ctx context.Context) ([]domain.Platform, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name FROM platforms ORDER BY name ASC")
	if err != nil {
		zap.L().Error("failed to list platforms", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	platforms := make([]domain.Platform, 0)
	for rows.Next() {
		var p domain.Platform
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		platforms = append(platforms, p)
	}
	return platforms, rows.Err()
}

func (r *Repository) ListRegions(ctx context.Context) ([]domain.Region, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name, code FROM regions ORDER BY name ASC")
	if err != nil {
		zap.L().Error("failed to list regions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	regions := make([]domain.Region, 0)
	for rows.Next() {
		var reg domain.Region
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.Code); err != nil {
			return nil, err
		}
		regions = append(regions, reg)
	}
	return regions, rows.Err()
}

// FindPlatform resolves a platform by numeric id or case-insensitive name.
func (r *Repository) FindPlatform(ctx context.Context, ident string) (*domain.Platform, error) {
	query := `
		SELECT id, name FROM platforms
		WHERE id::text = $1 OR LOWER(name) = LOWER($1)
		LIMIT 1
	`
	var p domain.Platform
	if err := r.db.QueryRow(ctx, query, ident).Scan(&p.ID, &p.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find platform", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// FindRegion resolves a region by numeric id, code or name, all case-insensitive.
func (r *Repository) FindRegion(ctx context.Context, ident string) (*domain.Region, error) {
	query := `
		SELECT id, name, code FROM regions
		WHERE id::text = $1 OR LOWER(code) = LOWER($1) OR LOWER(name) = LOWER($1)
		LIMIT 1
	`
	var reg domain.Region
	if err := r.db.QueryRow(ctx, query, ident).Scan(&reg.ID, &reg.Name, &reg.Code); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find region", zap.Error(err))
		return nil, err
	}
	return &reg, nil
}
