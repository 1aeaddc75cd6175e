package cache

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Options selects and configures a cache backend.
type Options struct {
	Backend string
	Dir     string
	Redis   RedisConfig
	Mongo   MongoConfig
}

// Open builds the cache named by opts.Backend. An empty backend means file
// when Dir is set and none otherwise.
func Open(ctx context.Context, opts Options) (Cache, error) {
	backend := opts.Backend
	if backend == "" {
		backend = BackendNone
		if opts.Dir != "" {
			backend = BackendFile
		}
	}

	switch backend {
	case BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		if opts.Dir == "" {
			return nil, fmt.Errorf("file cache: directory is required")
		}
		return NewFileCache(opts.Dir)
	case BackendRedis:
		return NewRedisCache(ctx, opts.Redis)
	case BackendMongo:
		return NewMongoCache(ctx, opts.Mongo)
	}
	return nil, fmt.Errorf("%w: %q (must be one of: none, file, redis, mongo)", ErrUnknownBackend, backend)
}
