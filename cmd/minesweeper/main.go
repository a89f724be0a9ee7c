package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minesweeper-console/internal/app"
	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/mines"
	"golang.org/x/term"
)

var (
	log = logrus.New()

	preset  string
	seed    uint64
	logFile string
)

func init() {
	const (
		presetUsage = "difficulty preset: 1, 2, 3, easy, medium or hard"
		seedUsage   = "seed for mine placement, 0 picks a random one"
		logUsage    = "log file path"
	)
	flag.StringVar(&preset, "preset", "", presetUsage)
	flag.StringVar(&preset, "p", "", presetUsage+" (shorthand)")
	flag.Uint64Var(&seed, "seed", 0, seedUsage)
	flag.Uint64Var(&seed, "s", 0, seedUsage+" (shorthand)")
	flag.StringVar(&logFile, "log", "", logUsage)
}

func setupLogging(cfg *config.Logging) {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	formatter := &logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	}
	log.SetFormatter(formatter)

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Level:      logLevel,
		Formatter:  formatter,
	})
	if err != nil {
		log.Fatal("unable to open log file: ", err)
	}
	log.AddHook(hook)

	mines.Log = log
}

func main() {
	flag.Parse()

	loggingConfig, err := config.NewLogging()
	if err != nil {
		log.Fatal(err)
	}
	if logFile != "" {
		loggingConfig.File = logFile
	}
	setupLogging(loggingConfig)

	appConfig, err := config.NewApp()
	if err != nil {
		log.Fatal(err)
	}
	if preset != "" {
		appConfig.Preset = preset
	}
	if seed != 0 {
		appConfig.Seed = seed
	}
	if _, err := appConfig.Difficulty(); err != nil {
		log.Fatal(err)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("minesweeper must be run in an interactive terminal")
	}

	// the screen belongs to the game from here on; entries still reach the
	// log file through the hook
	log.SetOutput(io.Discard)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.New(log, appConfig).Start(ctx); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
