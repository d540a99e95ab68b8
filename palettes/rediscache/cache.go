// Package rediscache provides an opt-in memoizing decorator over a
// palettes.Mapper, backed by Redis.
//
// The codec itself never caches; this package exists for callers that
// front a slow (network-backed) mapper and want lookups memoized across
// processes. Cache failures are silent: a Redis error degrades to a
// pass-through call on the wrapped mapper, never a failed lookup.
package rediscache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/gw2kit/chatlink/build"
	"github.com/gw2kit/chatlink/errors"
	redisclient "github.com/gw2kit/chatlink/internal/redis"
	"github.com/gw2kit/chatlink/palettes"
)

const (
	defaultTTL       = 24 * time.Hour
	defaultKeyPrefix = "chatlink:palette:"
)

// Config holds the decorator's dependencies
type Config struct {
	// Mapper is the wrapped mapper that serves cache misses.
	Mapper palettes.Mapper

	// Client is an existing go-redis client. Leave nil to dial Endpoint.
	Client goredis.UniversalClient

	// Endpoint is dialed when Client is nil.
	Endpoint string

	// TTL for cached entries. Zero means 24h. Palette assignments are
	// stable per game build, so long TTLs are safe.
	TTL time.Duration

	// KeyPrefix namespaces the cache keys. Zero means "chatlink:palette:".
	KeyPrefix string
}

// Validate ensures the config is complete
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Mapper == nil {
		return errors.InvalidArgument("wrapped mapper is required")
	}
	if c.Client == nil && c.Endpoint == "" {
		return errors.InvalidArgument("either a redis client or an endpoint is required")
	}
	return nil
}

// Mapper is a palettes.Mapper that memoizes lookups in Redis.
type Mapper struct {
	next   palettes.Mapper
	client redisclient.Client
	ttl    time.Duration
	prefix string
}

var _ palettes.Mapper = (*Mapper)(nil)

// New creates a caching mapper from the config.
func New(cfg *Config) (*Mapper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := redisclient.Client(cfg.Client)
	if client == nil {
		var err error
		client, err = redisclient.NewClient(cfg.Endpoint, nil)
		if err != nil {
			return nil, errors.Wrap(err, "dialing redis")
		}
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &Mapper{
		next:   cfg.Mapper,
		client: client,
		ttl:    ttl,
		prefix: prefix,
	}, nil
}

// PaletteToSkill resolves through the cache, falling back to the wrapped
// mapper on a miss or any Redis failure.
func (m *Mapper) PaletteToSkill(ctx context.Context, profession build.Profession, paletteIndex uint16, legend build.Legend) (uint32, error) {
	key := fmt.Sprintf("%sskill:%d:%d:%d", m.prefix, profession, paletteIndex, legend)

	if cached, err := m.client.Get(ctx, key).Result(); err == nil {
		if id, parseErr := strconv.ParseUint(cached, 10, 32); parseErr == nil {
			return uint32(id), nil
		}
	}

	id, err := m.next.PaletteToSkill(ctx, profession, paletteIndex, legend)
	if err != nil {
		return 0, err
	}

	m.client.Set(ctx, key, strconv.FormatUint(uint64(id), 10), m.ttl)
	return id, nil
}

// SkillToPalette resolves through the cache, falling back to the wrapped
// mapper on a miss or any Redis failure.
func (m *Mapper) SkillToPalette(ctx context.Context, profession build.Profession, skillID uint32, legend build.Legend) (uint16, error) {
	key := fmt.Sprintf("%spalette:%d:%d:%d", m.prefix, profession, skillID, legend)

	if cached, err := m.client.Get(ctx, key).Result(); err == nil {
		if index, parseErr := strconv.ParseUint(cached, 10, 16); parseErr == nil {
			return uint16(index), nil
		}
	}

	index, err := m.next.SkillToPalette(ctx, profession, skillID, legend)
	if err != nil {
		return 0, err
	}

	m.client.Set(ctx, key, strconv.FormatUint(uint64(index), 10), m.ttl)
	return index, nil
}
