package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/dragontiger/internal/common/clock"
	"github.com/KirkDiggler/dragontiger/internal/common/uuid"
	"github.com/KirkDiggler/dragontiger/internal/handlers/cli"
	"github.com/KirkDiggler/dragontiger/internal/models"
	"github.com/KirkDiggler/dragontiger/internal/repositories/ledger"
	"github.com/KirkDiggler/dragontiger/internal/services/tracker"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type CLI struct {
	Decks      int     `kong:"default='8',env='DT_DECKS',help='Number of decks in the shoe (1-20)'"`
	Bankroll   float64 `kong:"default='100',env='DT_BANKROLL',help='Starting bankroll (1-10000)'"`
	DragonPays float64 `kong:"default='1',env='DT_DRAGON_PAYOUT',help='Dragon payout, to one (1-10)'"`
	TigerPays  float64 `kong:"default='1',env='DT_TIGER_PAYOUT',help='Tiger payout, to one (1-10)'"`
	TiePays    float64 `kong:"default='11',env='DT_TIE_PAYOUT',help='Tie payout, to one (1-50)'"`
	PairPays   float64 `kong:"default='11',env='DT_PAIR_PAYOUT',help='Pair payout, to one (1-50)'"`
	TieRule    string  `kong:"default='lose',enum='push,lose',env='DT_TIE_RULE',help='Dragon/Tiger bets on a tie: push or lose'"`
	Seed       int64   `kong:"default='0',env='DT_SEED',help='Shuffle seed (0 for random)'"`
	RedisAddr  string  `kong:"env='REDIS_ADDR',help='Keep the round ledger in Redis instead of memory'"`
	RedisPass  string  `kong:"env='REDIS_PASSWORD',help='Redis password'"`
	Debug      bool    `kong:"env='DT_DEBUG',help='Enable debug logging'"`
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	var args CLI
	kong.Parse(&args,
		kong.Name("dragontiger"),
		kong.Description("Live Dragon vs. Tiger shoe tracker with exact probabilities and EVs"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	logger := setupLogger(args.Debug)

	if err := run(&args, &logger); err != nil {
		logger.Fatal().Err(err).Msg("Tracker stopped")
	}
}

// run owns every resource so deferred cleanup finishes before main exits
func run(args *CLI, logger *zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ledgerRepo, closeLedger, err := newLedgerRepo(args)
	if err != nil {
		return fmt.Errorf("failed to create ledger repository: %w", err)
	}
	defer closeLedger()

	trackerSvc, err := tracker.New(&tracker.Config{
		LedgerRepo:    ledgerRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
		Seed:          args.Seed,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracker service: %w", err)
	}

	console, err := args.newConsole(ctx, trackerSvc, logger)
	if err != nil {
		return fmt.Errorf("failed to start tracker: %w", err)
	}

	// Run blocks on stdin, so a signal has to win the race on its own
	done := make(chan error, 1)
	go func() {
		done <- console.Run(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		logger.Info().Msg("Shutting down")
		return nil
	}
}

func (c *CLI) settings() tracker.Settings {
	return tracker.Settings{
		DeckCount: c.Decks,
		Bankroll:  c.Bankroll,
		Payouts: models.PayoutTable{
			Dragon: c.DragonPays,
			Tiger:  c.TigerPays,
			Tie:    c.TiePays,
			Pair:   c.PairPays,
		},
		TieRule: models.TieRule(c.TieRule),
	}
}

func (c *CLI) newConsole(ctx context.Context, svc tracker.Service, logger *zerolog.Logger) (*cli.Console, error) {
	return cli.New(ctx, &cli.Config{
		Service:  svc,
		Settings: c.settings(),
		In:       os.Stdin,
		Out:      os.Stdout,
		Logger:   logger,
	})
}

// newLedgerRepo picks Redis when an address is configured and memory otherwise
func newLedgerRepo(c *CLI) (ledger.Repository, func(), error) {
	if c.RedisAddr == "" {
		return ledger.NewMemory(), func() {}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     c.RedisAddr,
		Password: c.RedisPass,
		DB:       0,
	})

	repo, err := ledger.NewRedis(&ledger.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		redisClient.Close()
		return nil, nil, err
	}

	return repo, func() { redisClient.Close() }, nil
}

// setupLogger writes human-readable logs to stderr so they stay out of the table output
func setupLogger(debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
