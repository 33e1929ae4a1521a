package cmd

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/facility-finder/internal/config"
	"github.com/facility-finder/internal/domain"
	redisRepo "github.com/facility-finder/internal/repository/redis"
)

var (
	enqueueParams []string
	enqueueWait   time.Duration
)

// enqueueCmd публикует событие поиска в stream:facility:search и ждет ответа воркера
var enqueueCmd = &cobra.Command{
	Use:   "enqueue",
	Short: "Поставить поиск в очередь воркера и дождаться результата",
	Long: `Публикует FacilitySearchEvent в stream:facility:search и читает stream:facility:done,
пока не придет ответ с тем же request_id. --wait 0 только публикует событие.`,
	Example: `  facilityctl enqueue -p language=indonesian --wait 30s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parseParams(enqueueParams)
		if err != nil {
			return err
		}
		if err := validateFormat(outputFormat); err != nil {
			return err
		}

		cfg, err := config.LoadFile(envPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		client, err := redisRepo.NewClient(&cfg.Redis, zap.NewNop())
		if err != nil {
			return err
		}
		defer client.Close()

		ctx := cmd.Context()
		streamRepo := redisRepo.NewStreamRepository(client, time.Second, zap.NewNop())

		lastID := doneStartID(client.XInfoStream(ctx, domain.StreamFacilityDone).Result())

		event := domain.FacilitySearchEvent{
			RequestID: uuid.New(),
			Params:    params,
		}
		if err := streamRepo.PublishToStream(ctx, domain.StreamFacilitySearch, event); err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "%s request %s published to %s\n",
			color.GreenString("✓"), event.RequestID, domain.StreamFacilitySearch)

		if enqueueWait <= 0 {
			return nil
		}

		waitCtx, cancel := context.WithTimeout(ctx, enqueueWait)
		defer cancel()

		done, err := waitForDone(waitCtx, client, event.RequestID, lastID)
		if err != nil {
			return err
		}
		if done.Error != "" {
			return fmt.Errorf("search failed: %s (%s)", done.Error, done.ErrorCode)
		}

		return printFacilities(cmd.OutOrStdout(), done.Facilities, outputFormat)
	},
}

func init() {
	enqueueCmd.Flags().StringArrayVarP(&enqueueParams, "param", "p", nil, "search parameter as key=value (repeatable)")
	enqueueCmd.Flags().DurationVar(&enqueueWait, "wait", 30*time.Second, "how long to wait for the worker response")
	rootCmd.AddCommand(enqueueCmd)
}

// doneStartID - позиция в stream:facility:done, после которой читаются ответы.
// Если стрима еще нет, читаем с начала: все, что в нем появится, новее запроса.
func doneStartID(info *redis.XInfoStream, err error) string {
	if err != nil || info == nil || info.LastGeneratedID == "" {
		return "0-0"
	}
	return info.LastGeneratedID
}

func waitForDone(ctx context.Context, client *redis.Client, requestID uuid.UUID, lastID string) (*domain.FacilityDoneEvent, error) {
	for {
		streams, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{domain.StreamFacilityDone, lastID},
			Count:   50,
			Block:   time.Second,
		}).Result()
		if err != nil && !stderrors.Is(err, redis.Nil) {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("timeout waiting for response to %s", requestID)
			}
			return nil, fmt.Errorf("failed to read %s: %w", domain.StreamFacilityDone, err)
		}

		for _, s := range streams {
			for _, msg := range s.Messages {
				lastID = msg.ID

				data, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}
				var done domain.FacilityDoneEvent
				if err := json.Unmarshal([]byte(data), &done); err != nil {
					continue
				}
				if done.RequestID == requestID {
					return &done, nil
				}
			}
		}

		if ctx.Err() != nil {
			return nil, fmt.Errorf("timeout waiting for response to %s", requestID)
		}
	}
}
