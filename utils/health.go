package utils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Supabase  bool      `json:"supabase"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// The Supabase probe hits the PostgREST root; any response counts as reachable.
func StartHealthMonitor(redisClients []*redis.Client, supabaseURL string) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()
		httpClient := &http.Client{Timeout: 5 * time.Second}

		for range ticker.C {
			var redisHealth []bool

			for _, client := range redisClients {
				err := client.Ping(ctx).Err()
				redisHealth = append(redisHealth, err == nil)
			}

			supabaseHealthy := false
			if supabaseURL != "" {
				if resp, err := httpClient.Get(supabaseURL + "/rest/v1/"); err == nil {
					resp.Body.Close()
					supabaseHealthy = true
				}
			}

			mu.Lock()
			currentHealth = HealthStatus{
				Supabase:  supabaseHealthy,
				Redis:     redisHealth,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}
