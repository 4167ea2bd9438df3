package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnhub/config"
	"learnhub/database"
	"learnhub/logger"
	"learnhub/routers"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.Open(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to the database", "error", err, "driver", cfg.DBDriver)
	}

	if cfg.SeedOnStart {
		seed, err := database.LoadSeed(cfg.SeedFile)
		if err != nil {
			log.Fatal("Failed to load seed data", "error", err)
		}
		if err := database.Seed(db, seed, cfg.SaltRound, log); err != nil {
			log.Fatal("Failed to seed database", "error", err)
		}
	}

	app := routers.NewApp(db, cfg, log)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		log.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("Server shutdown failed", "error", err)
		}
	}()

	log.Info("Server is running", "port", cfg.Port, "env", cfg.AppEnv)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("Server stopped", "error", err)
	}

	if err := database.Close(db); err != nil {
		log.Error("Failed to close database", "error", err)
	}
	log.Info("Server exited")
}
