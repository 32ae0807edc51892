package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/garyPenhook/skcclog/internal/backup"
	"github.com/garyPenhook/skcclog/internal/config"
	"github.com/garyPenhook/skcclog/internal/database"
	"github.com/garyPenhook/skcclog/internal/logging"
	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/roster"
	"github.com/garyPenhook/skcclog/internal/server"
	"github.com/garyPenhook/skcclog/internal/store"
)

func main() {
	restoreName := flag.String("restore", "", "restore the named backup snapshot over the database and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.Setup(cfg.LogLevel)

	// Restore runs before the database is opened so the WAL is not live
	// while the file is replaced.
	if *restoreName != "" {
		mgr := backup.NewManager(backup.Config{
			Dir:      cfg.BackupDir,
			DBPath:   cfg.DBPath,
			Password: cfg.BackupPassword,
		}, nil, logger.With("component", "backup"))
		if err := mgr.Restore(*restoreName); err != nil {
			logger.Error("restore failed", "file", *restoreName, "error", err)
			os.Exit(1)
		}
		logger.Info("restore complete", "file", *restoreName, "db", cfg.DBPath)
		return
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Seed operator settings from the environment on first run. Anything
	// already saved wins.
	settingsStore := store.NewSettingsStore(db)
	settings, err := settingsStore.Load()
	if err != nil {
		logger.Error("failed to load settings", "error", err)
		os.Exit(1)
	}
	if settings.Callsign == "" && cfg.Callsign != "" {
		seed := model.Settings{
			Callsign:      cfg.Callsign,
			SKCCNumber:    cfg.SKCCNumber,
			JoinDate:      cfg.JoinDate,
			CenturionDate: cfg.CenturionDate,
			TribuneX8Date: cfg.TribuneX8Date,
		}
		if err := settingsStore.Save(seed); err != nil {
			logger.Error("failed to seed settings", "error", err)
			os.Exit(1)
		}
		logger.Info("seeded operator settings", "callsign", cfg.Callsign)
	}

	rosterSvc := roster.NewService(roster.Config{
		MemberURL: cfg.RosterURL,
		RollURLs: map[string]string{
			roster.RollCenturion: cfg.CenturionURL,
			roster.RollTribune:   cfg.TribuneURL,
			roster.RollSenator:   cfg.SenatorURL,
		},
		RefreshInterval: cfg.RefreshInterval,
	}, store.NewRosterStore(db), store.NewAwardRosterStore(db), logger.With("component", "roster"))
	rosterSvc.Start()
	defer rosterSvc.Stop()

	backupMgr := backup.NewManager(backup.Config{
		Dir:       cfg.BackupDir,
		DBPath:    cfg.DBPath,
		Password:  cfg.BackupPassword,
		Retention: cfg.BackupRetention,
		S3: backup.S3Config{
			Endpoint:  cfg.BackupS3Endpoint,
			Bucket:    cfg.BackupS3Bucket,
			Region:    cfg.BackupS3Region,
			AccessKey: cfg.BackupS3AccessKey,
			SecretKey: cfg.BackupS3SecretKey,
		},
	}, db, logger.With("component", "backup"))

	srv := server.New(db, rosterSvc, backupMgr, logger)

	// Drop expired rate-limit windows so the map doesn't grow with every
	// client address ever seen.
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			srv.RateLimiter().Cleanup()
		}
	}()

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("skcclog listening", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
