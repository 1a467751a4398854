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

	"github.com/joho/godotenv"

	"github.com/avolkhin/forum-server/internal/api/http/router"
	httpServer "github.com/avolkhin/forum-server/internal/api/http/server"
	"github.com/avolkhin/forum-server/internal/config"
	"github.com/avolkhin/forum-server/internal/logger"
	"github.com/avolkhin/forum-server/internal/model"
	"github.com/avolkhin/forum-server/internal/password"
	"github.com/avolkhin/forum-server/internal/repository/postgres"
	"github.com/avolkhin/forum-server/internal/server"
	"github.com/avolkhin/forum-server/internal/service"

	httpctx "github.com/avolkhin/forum-server/internal/api/http/context"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

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
	forumRepo := postgres.NewForumRepository(db)
	threadRepo := postgres.NewThreadRepository(db)
	postRepo := postgres.NewPostRepository(db)

	hasher := password.NewBcryptHasher()
	identityService := service.NewIdentity(userRepo, hasher, logger)
	forumService := service.NewForum(forumRepo, threadRepo, postRepo, logger, cfg.Forum.PageSize)
	ctxMgr := httpctx.NewManager()

	r := router.New(identityService, forumService, ctxMgr, db, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

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
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
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
