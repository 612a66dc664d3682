package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gift-card-checker-service/internal/models"
)

// Cache TTL for submission reads. Writes invalidate eagerly, so the TTL only
// bounds staleness after an out-of-band change.
const submissionCacheTTL = 5 * time.Minute

const (
	listCacheKey  = "giftcards:submissions:list"
	countCacheKey = "giftcards:submissions:count"
)

// CachedRepository decorates any SubmissionRepository with a Redis read cache
// for List and Count. Every write path invalidates both keys. Cache failures
// fall through to the underlying store.
type CachedRepository struct {
	inner SubmissionRepository
	redis *redis.Client
	log   *logrus.Entry
}

func NewCachedRepository(inner SubmissionRepository, redisClient *redis.Client, logger *logrus.Logger) *CachedRepository {
	return &CachedRepository{
		inner: inner,
		redis: redisClient,
		log:   logger.WithField("component", "repository.cache"),
	}
}

func (r *CachedRepository) invalidate(ctx context.Context) {
	if err := r.redis.Del(ctx, listCacheKey, countCacheKey).Err(); err != nil {
		r.log.WithError(err).Warn("Failed to invalidate submission caches")
	}
}

func (r *CachedRepository) Create(ctx context.Context, s *models.Submission) error {
	err := r.inner.Create(ctx, s)
	if err == nil {
		r.invalidate(ctx)
	}
	return err
}

func (r *CachedRepository) List(ctx context.Context) ([]models.Submission, error) {
	if val, err := r.redis.Get(ctx, listCacheKey).Result(); err == nil {
		var submissions []models.Submission
		if err := json.Unmarshal([]byte(val), &submissions); err == nil {
			return submissions, nil
		}
	}

	submissions, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(submissions); err == nil {
		if err := r.redis.Set(ctx, listCacheKey, data, submissionCacheTTL).Err(); err != nil {
			r.log.WithError(err).Warn("Failed to cache submission list")
		}
	}
	return submissions, nil
}

func (r *CachedRepository) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := r.inner.DeleteAll(ctx)
	if err == nil {
		r.invalidate(ctx)
	}
	return deleted, err
}

func (r *CachedRepository) Count(ctx context.Context) (int64, error) {
	if val, err := r.redis.Get(ctx, countCacheKey).Result(); err == nil {
		if count, err := strconv.ParseInt(val, 10, 64); err == nil {
			return count, nil
		}
	}

	count, err := r.inner.Count(ctx)
	if err != nil {
		return 0, err
	}

	if err := r.redis.Set(ctx, countCacheKey, strconv.FormatInt(count, 10), submissionCacheTTL).Err(); err != nil {
		r.log.WithError(err).Warn("Failed to cache submission count")
	}
	return count, nil
}

func (r *CachedRepository) ExistsByCard(ctx context.Context, cardNumber string) (bool, error) {
	return r.inner.ExistsByCard(ctx, cardNumber)
}

func (r *CachedRepository) DeleteByCard(ctx context.Context, cardNumber string) (int64, error) {
	deleted, err := r.inner.DeleteByCard(ctx, cardNumber)
	if err == nil {
		r.invalidate(ctx)
	}
	return deleted, err
}

// Ping reports the health of the underlying store, not of Redis; losing the
// cache must not flip the health endpoint.
func (r *CachedRepository) Ping(ctx context.Context) error {
	return r.inner.Ping(ctx)
}

func (r *CachedRepository) Name() string {
	return r.inner.Name()
}
