// Copyright (c) 2026 Marquee. All rights reserved.

/*
Package flash implements one-shot feedback messages shown after form
submissions ("Venue X was successfully listed!").

# Architecture

Messages are queued server-side in Redis under a per-browser key and
consumed — read once, then deleted — on the next page render. The browser
only ever holds an opaque session id cookie, never the messages themselves.
Flash delivery is best-effort: a Redis fault degrades to a missing notice,
never to a failed request.
*/
package flash

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/marquee-live/marquee/internal/platform/constants"
	"github.com/marquee-live/marquee/internal/platform/ctxutil"
)

// Queue is the storage contract for pending flash messages.
type Queue interface {
	// Push appends a message to the key's queue and refreshes its TTL.
	Push(ctx context.Context, key, message string, ttl time.Duration) error
	// PopAll returns the key's messages in queue order and deletes the queue.
	PopAll(ctx context.Context, key string) ([]string, error)
}

// Store queues and consumes flash messages for HTTP handlers.
type Store struct {
	queue Queue
	log   *slog.Logger
}

func New(queue Queue, logger *slog.Logger) *Store {
	return &Store{queue: queue, log: logger}
}

// Add queues a message for the requesting browser, creating the session
// cookie if this is the browser's first flash.
func (store *Store) Add(writer http.ResponseWriter, request *http.Request, message string) {
	sid := store.sessionID(writer, request)

	err := store.queue.Push(request.Context(), constants.RedisPrefixFlash+sid, message, constants.FlashTTL)
	if err != nil {
		ctxutil.GetLogger(request.Context()).Warn("flash_queue_failed", slog.Any("error", err))
	}
}

// Consume returns and clears the browser's pending messages.
// A browser without a session cookie has nothing queued.
func (store *Store) Consume(request *http.Request) []string {
	cookie, err := request.Cookie(constants.FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	messages, err := store.queue.PopAll(request.Context(), constants.RedisPrefixFlash+cookie.Value)
	if err != nil {
		ctxutil.GetLogger(request.Context()).Warn("flash_consume_failed", slog.Any("error", err))
		return nil
	}
	return messages
}

// sessionID returns the browser's flash session id, minting a new cookie
// when absent.
func (store *Store) sessionID(writer http.ResponseWriter, request *http.Request) string {
	if cookie, err := request.Cookie(constants.FlashCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sid := uuid.NewString()
	if uuidV7, err := uuid.NewV7(); err == nil {
		sid = uuidV7.String()
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.FlashCookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

// # Redis Queue

type redisQueue struct {
	client *redis.Client
}

// NewRedisQueue wraps a Redis client as the production flash queue.
func NewRedisQueue(client *redis.Client) Queue {
	return &redisQueue{client: client}
}

func (q *redisQueue) Push(ctx context.Context, key, message string, ttl time.Duration) error {
	pipe := q.client.TxPipeline()
	pipe.RPush(ctx, key, message)
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (q *redisQueue) PopAll(ctx context.Context, key string) ([]string, error) {
	messages, err := q.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, nil
	}
	if err := q.client.Del(ctx, key).Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

// # In-Memory Queue

// memoryQueue is a process-local Queue used by tests.
type memoryQueue struct {
	mu     sync.Mutex
	queues map[string][]string
}

// NewMemoryQueue returns a Queue backed by a process-local map.
func NewMemoryQueue() Queue {
	return &memoryQueue{queues: make(map[string][]string)}
}

func (q *memoryQueue) Push(_ context.Context, key, message string, _ time.Duration) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.queues[key] = append(q.queues[key], message)
	return nil
}

func (q *memoryQueue) PopAll(_ context.Context, key string) ([]string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	messages := q.queues[key]
	delete(q.queues, key)
	return messages, nil
}
