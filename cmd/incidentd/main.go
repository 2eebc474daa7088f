package main

import (
	"context"
	"log"

	"github.com/technohippy/aiid/internal/config"
	httpinfra "github.com/technohippy/aiid/internal/infra/http"
	"github.com/technohippy/aiid/internal/infra/mongodb"
	"github.com/technohippy/aiid/internal/platform/logger"
)

func main() {
	cfg := config.FromEnv()

	zlog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	store, err := mongodb.NewStore(context.Background(), cfg)
	if err != nil {
		zlog.Fatal("failed to init store", "error", err)
	}
	defer store.Close(context.Background())

	zlog.Info("store connected", "primary_db", cfg.PrimaryDBName)

	srv := httpinfra.NewServer(cfg, store, zlog)
	if err := srv.Run(); err != nil {
		zlog.Fatal("server exited", "error", err)
	}
}
