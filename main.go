package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"gopkg.in/natefinch/lumberjack.v2"

	app "github.com/rocketscienceinc/herochess-backend/internal"
	"github.com/rocketscienceinc/herochess-backend/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "herochess",
		Usage: "authoritative game server for 5x5 hero chess",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the yaml config file",
				Value:   "config.yml",
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	conf, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	logger, closeLog := initLogger(conf)
	defer closeLog()

	return app.RunApp(ctx, logger, conf)
}

// initialize logger; with a log file set, records go to stdout and the rotating file.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stdout
	closeLog := func() {}

	if conf.LogFile.Path != "" {
		file := &lumberjack.Logger{
			Filename:   conf.LogFile.Path,
			MaxSize:    conf.LogFile.MaxSizeMB,
			MaxBackups: conf.LogFile.MaxBackups,
			MaxAge:     conf.LogFile.MaxAgeDays,
		}

		out = io.MultiWriter(os.Stdout, file)
		closeLog = func() { _ = file.Close() }
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeLog
}
