package utils

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

func TestCheckHealth_UnreachableDependencies(t *testing.T) {
	dead := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
		ReadTimeout: 10 * time.Millisecond,
		MaxRetries:  -1,
	})

	status := checkHealth(context.Background(), dead, nil, nil)
	if status.Cache {
		t.Fatalf("unreachable cache reported healthy")
	}
	if status.AuthCache {
		t.Fatalf("nil auth cache client must report unhealthy")
	}
	if status.Mongo {
		t.Fatalf("nil mongo client must report unhealthy")
	}
	if status.CheckedAt.IsZero() {
		t.Fatalf("snapshot must carry its check time")
	}
}
