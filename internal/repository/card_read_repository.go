package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/eaglebank/banking-console/internal/cache"
	"github.com/eaglebank/banking-console/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cardViewKeyPrefix = "card:view:"

// CardReadRepository looks cards up by number. When a Redis client is
// supplied it is consulted first and warmed on every cold read.
type CardReadRepository struct {
	db    *sql.DB
	cache *cache.ViewCache[models.CardView]
}

// NewCardReadRepository builds a read repository. redisClient may be nil, in
// which case every lookup goes to PostgreSQL.
func NewCardReadRepository(db *sql.DB, redisClient redis.Cmdable, ttl time.Duration, log *zap.Logger) *CardReadRepository {
	r := &CardReadRepository{db: db}
	if redisClient != nil {
		r.cache = cache.NewViewCache[models.CardView](redisClient, cardViewKeyPrefix, ttl, log)
	}
	return r
}

func (r *CardReadRepository) FindByNumber(ctx context.Context, number string) (*models.Card, error) {
	if r.cache != nil {
		if view, ok := r.cache.Get(ctx, number); ok {
			return view.ToCard(), nil
		}
	}

	query := `SELECT id, number, pin, balance FROM card WHERE number = $1`
	var card models.Card
	err := r.db.QueryRowContext(ctx, query, number).Scan(&card.ID, &card.Number, &card.PIN, &card.Balance)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	r.CacheCardView(ctx, models.ToView(&card))
	return &card, nil
}

// CacheCardView stores or refreshes the cached projection of a card.
func (r *CardReadRepository) CacheCardView(ctx context.Context, view *models.CardView) {
	if r.cache == nil {
		return
	}
	r.cache.Set(ctx, view.Number, view)
}

// InvalidateCardView drops the cached projection of a card.
func (r *CardReadRepository) InvalidateCardView(ctx context.Context, number string) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, number)
}
