package service

import (
	"context"
	"courseware_backend/internal/model"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultProgressChannel 未配置 redis.channel 时使用
const DefaultProgressChannel = "courseware.progress.events"

type ProgressEvent struct {
	Op       string          `json:"op"`
	Progress *model.Progress `json:"progress"`
	At       time.Time       `json:"at"`
}

// Notifier 进度写入成功后的事件通知，失败不影响写入
type Notifier interface {
	Publish(ctx context.Context, event ProgressEvent) error
}

type NoopNotifier struct{}

func (NoopNotifier) Publish(context.Context, ProgressEvent) error { return nil }

// RedisNotifier 通过 Redis Pub/Sub 推送给教师端等订阅者
type RedisNotifier struct {
	rdb     *redis.Client
	channel string
}

func NewRedisNotifier(rdb *redis.Client, channel string) *RedisNotifier {
	if channel == "" {
		channel = DefaultProgressChannel
	}
	return &RedisNotifier{rdb: rdb, channel: channel}
}

func (n *RedisNotifier) Channel() string { return n.channel }

func (n *RedisNotifier) Publish(ctx context.Context, event ProgressEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, n.channel, payload).Err()
}
