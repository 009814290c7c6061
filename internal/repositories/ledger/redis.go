package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/dragontiger/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for a session's ledger list
	ledgerKeyPrefix = "ledger:"
)

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using a Redis list per session
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func ledgerKey(sessionID string) string {
	return ledgerKeyPrefix + sessionID
}

// AppendEntry pushes the entry onto the tail of the session list
func (r *redisRepository) AppendEntry(ctx context.Context, input *AppendEntryInput) error {
	if err := validateEntry(input); err != nil {
		return err
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger entry: %w", err)
	}

	if err := r.client.RPush(ctx, ledgerKey(input.Entry.SessionID), entryJSON).Err(); err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}

	return nil
}

// ListEntries reads the whole session list
func (r *redisRepository) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	raw, err := r.client.LRange(ctx, ledgerKey(input.SessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}

	entries := make([]*models.LedgerEntry, 0, len(raw))
	for i, entryJSON := range raw {
		var entry models.LedgerEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ledger entry %d: %w", i, err)
		}
		entries = append(entries, &entry)
	}

	return &ListEntriesOutput{
		Entries: entries,
	}, nil
}

// ClearEntries deletes the session list
func (r *redisRepository) ClearEntries(ctx context.Context, input *ClearEntriesInput) error {
	if input == nil || input.SessionID == "" {
		return ErrMissingSessionID
	}

	if err := r.client.Del(ctx, ledgerKey(input.SessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear ledger entries: %w", err)
	}

	return nil
}
