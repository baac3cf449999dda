package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dtroode/notekeeper-server/internal/api/http/httpctx"
	"github.com/dtroode/notekeeper-server/internal/api/http/router"
	"github.com/dtroode/notekeeper-server/internal/config"
	"github.com/dtroode/notekeeper-server/internal/logger"
	"github.com/dtroode/notekeeper-server/internal/model"
	"github.com/dtroode/notekeeper-server/internal/repository/postgres"
	"github.com/dtroode/notekeeper-server/internal/server"
	"github.com/dtroode/notekeeper-server/internal/service"
	"github.com/dtroode/notekeeper-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	noteRepo := postgres.NewNoteRepository(db)

	jwtManager := token.NewJWT(cfg.JWT.Secret)

	var tokenParser model.TokenParser
	if cfg.JWT.VerifySignatures {
		tokenParser = jwtManager
	} else {
		// Historical default: token payloads are trusted without a
		// signature check. Set JWT_VERIFY_SIGNATURES=true to harden.
		logger.Warn("bearer token signatures are NOT verified")
		tokenParser = token.NewUnverifiedParser()
	}

	authService := service.NewAuth(userRepo, jwtManager, logger)
	userService := service.NewUser(userRepo, logger)
	noteService := service.NewNote(noteRepo, userRepo, logger)
	ctxMgr := httpctx.NewManager()

	r := router.New(authService, userService, noteService, tokenParser, ctxMgr, cfg.HTTP.AllowedOrigins, logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
