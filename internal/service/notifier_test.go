package service

import (
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisNotifierChannel(t *testing.T) {
	// NewClient 不会立即建连
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer rdb.Close()

	assert.Equal(t, DefaultProgressChannel, NewRedisNotifier(rdb, "").Channel())
	assert.Equal(t, "staging.progress.events", NewRedisNotifier(rdb, "staging.progress.events").Channel())
}
