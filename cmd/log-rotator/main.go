package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jy02140251/log-rotator/internal/compress"
	"github.com/jy02140251/log-rotator/internal/config"
	"github.com/jy02140251/log-rotator/internal/fs"
	"github.com/jy02140251/log-rotator/internal/logging"
	"github.com/jy02140251/log-rotator/internal/rotation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load config
	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Logger
	logg, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logg.Sync()

	policy, err := buildPolicy(cfg)
	if err != nil {
		log.Fatalf("invalid policy: %v", err)
	}

	eng := rotation.New(policy, logg, fs.New())

	// One rotation pass over the configured pattern
	results, err := eng.Rotate(ctx, cfg.Rotation.Pattern, cfg.DryRun)
	if err != nil {
		logg.Error("rotation pass failed", "pattern", cfg.Rotation.Pattern, "error", err)
		os.Exit(1)
	}

	if len(results) > 0 {
		fmt.Println(rotation.Summarize(results))
	} else {
		fmt.Println("No files needed rotation.")
	}

	// Retention: age sweep then count prune over the archive directory
	dir := cfg.Retention.Directory
	if dir == "" {
		dir = filepath.Dir(cfg.Rotation.Pattern)
	}

	if cfg.Retention.MaxAge > 0 {
		removed, err := eng.CleanupOld(ctx, dir, cfg.DryRun)
		if err != nil {
			logg.Error("age sweep failed", "directory", dir, "error", err)
		} else {
			logg.Info("age sweep complete", "directory", dir, "removed", removed)
		}
	}

	if cfg.Retention.BackupCount > 0 {
		removed, err := eng.Prune(ctx, dir, cfg.DryRun)
		if err != nil {
			logg.Error("prune failed", "directory", dir, "error", err)
		} else {
			logg.Info("prune complete", "directory", dir, "removed", removed)
		}
	}
}

// buildPolicy converts the validated config into the engine's typed policy.
func buildPolicy(cfg *config.Config) (rotation.Policy, error) {
	codec, err := compress.Parse(cfg.Rotation.Compression)
	if err != nil {
		return rotation.Policy{}, err
	}

	mode, err := rotation.ParseCollisionMode(cfg.Rotation.OnCollision)
	if err != nil {
		return rotation.Policy{}, err
	}

	return rotation.Policy{
		MaxSizeBytes:    cfg.Rotation.MaxSizeBytes,
		MaxAge:          cfg.Retention.MaxAge.Std(),
		Compression:     codec,
		TimestampFormat: cfg.Rotation.TimestampFormat,
		BackupCount:     cfg.Retention.BackupCount,
		OnCollision:     mode,
	}, nil
}
