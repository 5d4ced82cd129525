package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iudanet/apisign/internal/cli"
	"github.com/iudanet/apisign/internal/config"
	"github.com/iudanet/apisign/internal/iocli"
	"github.com/iudanet/apisign/internal/request"
	"github.com/iudanet/apisign/internal/service"
	"github.com/iudanet/apisign/internal/sign"
	"github.com/iudanet/apisign/internal/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Конфигурация: env (включая .env) и глобальные флаги
	cfg := config.NewConfig()

	// Show version and exit if requested
	if cfg.Version {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	io := iocli.NewStdio()

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.New(io, nil, nil, cfg).PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст
	ctx := context.Background()

	// Каталог базы по умолчанию ~/.apisign может еще не существовать
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create database directory: %v\n", err)
		os.Exit(1)
	}

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Провайдер хеширования: hashd, если демон настроен и отвечает,
	// иначе локальный MD5
	signer := sign.Detect(ctx, cfg.HashdURL, logger)

	executor := request.NewExecutor(signer)

	svc, err := service.NewService(ctx, boltStorage, executor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load storage: %v\n", err)
		os.Exit(1)
	}

	// Выполняем команду
	if err := cli.New(io, svc, signer, cfg).Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("apisign\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
