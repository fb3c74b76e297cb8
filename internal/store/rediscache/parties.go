package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"appointly/backend/internal/domain"
	"appointly/backend/internal/store"
)

// PartyDirectory is a read-through cache in front of another directory.
// Only hits are cached, so a party registered after a miss is visible at once.
// Redis failures fall back to the underlying directory.
type PartyDirectory struct {
	next   store.PartyDirectory
	rdb    redis.UniversalClient
	ttl    time.Duration
	prefix string
	log    *slog.Logger
}

func NewPartyDirectory(next store.PartyDirectory, rdb redis.UniversalClient, ttl time.Duration, log *slog.Logger) *PartyDirectory {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if log == nil {
		log = slog.Default()
	}
	return &PartyDirectory{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		prefix: "appointly:party",
		log:    log.With(slog.String("component", "rediscache.parties")),
	}
}

type cachedParty struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func (d *PartyDirectory) key(kind domain.PartyKind, id string) string {
	return strings.Join([]string{d.prefix, string(kind), id}, ":")
}

func (d *PartyDirectory) Resolve(ctx context.Context, kind domain.PartyKind, id string) (domain.Party, error) {
	key := d.key(kind, id)

	raw, err := d.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var c cachedParty
		if jsonErr := json.Unmarshal(raw, &c); jsonErr == nil {
			return domain.Party{
				ID:          c.ID,
				Kind:        domain.PartyKind(c.Kind),
				DisplayName: c.DisplayName,
				CreatedAt:   c.CreatedAt,
			}, nil
		}
		d.log.Warn("discarding undecodable cache entry", slog.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		d.log.Warn("party cache read failed", slog.Any("err", err), slog.String("key", key))
	}

	p, err := d.next.Resolve(ctx, kind, id)
	if err != nil {
		return domain.Party{}, err
	}

	b, err := json.Marshal(cachedParty{
		ID:          p.ID,
		Kind:        string(p.Kind),
		DisplayName: p.DisplayName,
		CreatedAt:   p.CreatedAt,
	})
	if err == nil {
		if err := d.rdb.Set(ctx, key, b, d.ttl).Err(); err != nil {
			d.log.Warn("party cache write failed", slog.Any("err", err), slog.String("key", key))
		}
	}
	return p, nil
}

var _ store.PartyDirectory = (*PartyDirectory)(nil)
