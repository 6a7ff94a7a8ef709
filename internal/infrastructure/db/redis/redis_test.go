package redis

import (
	"testing"

	"github.com/teamtrack/employee-system/internal/infrastructure/config"
)

func TestClientOptions(t *testing.T) {
	cfg := config.RedisConfig{
		Addr:     "cache.internal:6380",
		Password: "hunter2",
		DB:       3,
		PoolSize: 25,
	}

	opts := clientOptions(cfg)
	if opts.Addr != cfg.Addr {
		t.Fatalf("addr not applied: %s", opts.Addr)
	}
	if opts.Password != cfg.Password {
		t.Fatalf("password not applied")
	}
	if opts.DB != cfg.DB {
		t.Fatalf("db not applied: %d", opts.DB)
	}
	if opts.PoolSize != cfg.PoolSize {
		t.Fatalf("pool size not applied: %d", opts.PoolSize)
	}
}
