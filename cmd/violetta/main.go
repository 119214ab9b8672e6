package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/violetta-bot/violetta/internal/bot"
	"github.com/violetta-bot/violetta/internal/export"
	"github.com/violetta-bot/violetta/internal/recommend"
	"github.com/violetta-bot/violetta/internal/reminder"
	"github.com/violetta-bot/violetta/internal/store"
	"github.com/violetta-bot/violetta/internal/telegram"
)

// Default configuration constants
const (
	// DefaultStateDir is the default directory for violetta state data
	DefaultStateDir = "/var/lib/violetta"
	// DefaultDBFileName is the default SQLite database filename
	DefaultDBFileName = "violetta.db"
)

func main() {
	config := loadEnvironmentConfig()
	flags := parseCommandLineFlags(config)
	initializeLogger(*flags.debug)

	if err := run(flags); err != nil {
		slog.Error("violetta failed to run", "error", err)
		os.Exit(1)
	}
	slog.Info("violetta exited successfully")
}

// Config holds environment configuration
type Config struct {
	BotToken    string
	OpenAIKey   string
	DatabaseDSN string
	StateDir    string
	AdminIDs    string
}

// Flags holds command line flag values
type Flags struct {
	debug     *bool
	botToken  *string
	openaiKey *string
	dbDSN     *string
	adminIDs  *string
}

// initializeLogger sets up structured logging
func initializeLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadEnvironmentConfig loads configuration from environment variables and .env file
func loadEnvironmentConfig() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	}

	config := Config{
		BotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		StateDir:    os.Getenv("VIOLETTA_STATE_DIR"),
		AdminIDs:    os.Getenv("ADMIN_IDS"),
	}

	if config.StateDir == "" {
		config.StateDir = DefaultStateDir
	}
	// Default to SQLite in the state directory when no DSN is provided
	if config.DatabaseDSN == "" {
		config.DatabaseDSN = filepath.Join(config.StateDir, DefaultDBFileName)
	}
	return config
}

// parseCommandLineFlags parses command line arguments with environment defaults
func parseCommandLineFlags(config Config) Flags {
	flags := Flags{
		debug:     flag.Bool("debug", false, "enable debug logging"),
		botToken:  flag.String("bot-token", config.BotToken, "Telegram bot token (overrides $TELEGRAM_BOT_TOKEN)"),
		openaiKey: flag.String("openai-api-key", config.OpenAIKey, "OpenAI API key (overrides $OPENAI_API_KEY)"),
		dbDSN:     flag.String("db-dsn", config.DatabaseDSN, "database DSN, SQLite path or Postgres URL (overrides $DATABASE_DSN)"),
		adminIDs:  flag.String("admin-ids", config.AdminIDs, "comma-separated admin chat IDs (overrides $ADMIN_IDS)"),
	}
	flag.Parse()
	return flags
}

// parseAdminIDs splits the comma-separated admin list, skipping malformed
// entries with a warning.
func parseAdminIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			slog.Warn("Skipping malformed admin ID", "value", part)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func run(flags Flags) error {
	st, err := store.NewStore(store.WithDSN(*flags.dbDSN))
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("Failed to close store", "error", err)
		}
	}()

	openaiClient, err := recommend.NewClient(recommend.WithAPIKey(*flags.openaiKey))
	if err != nil {
		return err
	}
	recommender := recommend.NewService(openaiClient)

	transport, err := telegram.NewClient(telegram.WithToken(*flags.botToken))
	if err != nil {
		return err
	}

	scheduler := reminder.NewScheduler(st, transport)
	if err := scheduler.Restore(); err != nil {
		return err
	}
	if err := scheduler.Start(); err != nil {
		return err
	}
	defer scheduler.Stop()

	b := bot.New(bot.Config{
		Store:       st,
		Transport:   transport,
		Recommender: recommender,
		Reminders:   scheduler,
		Exporter:    export.NewService(),
		Admins:      parseAdminIDs(*flags.adminIDs),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("violetta started")
	if err := transport.Run(ctx, b); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
