//go:build unit

package config_test

import (
	"testing"
	"time"

	"commerce-actions/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestRedisConfig_CheckLockLease(t *testing.T) {
	tests := []struct {
		name    string
		ttl     time.Duration
		timeout time.Duration
		wantErr bool
	}{
		{name: "lease outlives the action", ttl: 30 * time.Second, timeout: 15 * time.Second},
		{name: "lease equal to the action timeout", ttl: 15 * time.Second, timeout: 15 * time.Second, wantErr: true},
		{name: "lease shorter than the action timeout", ttl: 5 * time.Second, timeout: 15 * time.Second, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.RedisConfig{Addr: "localhost:6379", LockTTL: tt.ttl}

			err := cfg.CheckLockLease(tt.timeout)

			if tt.wantErr {
				assert.ErrorContains(t, err, "REDIS_LOCK_TTL")
				return
			}
			assert.NoError(t, err)
		})
	}
}
