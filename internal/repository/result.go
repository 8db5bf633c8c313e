package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/herochess-backend/internal/entity"
)

const (
	winsKey   = "results:wins"
	recentKey = "results:recent"

	RecentLimit = 20
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.GameResult) error
	Stats(ctx context.Context) (*entity.ResultStats, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Save - counts the win and pushes the result onto the bounded recent list.
func (that *dbResult) Save(ctx context.Context, result *entity.GameResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, winsKey, string(result.Winner), 1)
		pipe.LPush(ctx, recentKey, resultJSON)
		pipe.LTrim(ctx, recentKey, 0, RecentLimit-1)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// Stats - win tally per seat and the most recent results, newest first.
func (that *dbResult) Stats(ctx context.Context) (*entity.ResultStats, error) {
	wins, err := that.client.HGetAll(ctx, winsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get wins: %w", err)
	}

	stats := &entity.ResultStats{
		Wins:   make(map[entity.Seat]int, len(entity.Seats)),
		Recent: []*entity.GameResult{},
	}

	for _, seat := range entity.Seats {
		stats.Wins[seat] = 0
	}

	for seat, count := range wins {
		n, err := strconv.Atoi(count)
		if err != nil {
			return nil, fmt.Errorf("bad win count for %s: %w", seat, err)
		}

		stats.Wins[entity.Seat(seat)] = n
	}

	recent, err := that.client.LRange(ctx, recentKey, 0, RecentLimit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent results: %w", err)
	}

	for _, raw := range recent {
		var result entity.GameResult
		if err = json.Unmarshal([]byte(raw), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}

		stats.Recent = append(stats.Recent, &result)
	}

	return stats, nil
}
