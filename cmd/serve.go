package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Harish050696/cardvault/internal/api/http/httpctx"
	"github.com/Harish050696/cardvault/internal/api/http/router"
	"github.com/Harish050696/cardvault/internal/config"
	"github.com/Harish050696/cardvault/internal/logger"
	"github.com/Harish050696/cardvault/internal/model"
	"github.com/Harish050696/cardvault/internal/ocr"
	"github.com/Harish050696/cardvault/internal/repository/postgres"
	"github.com/Harish050696/cardvault/internal/server"
	"github.com/Harish050696/cardvault/internal/service"
	"github.com/Harish050696/cardvault/internal/session"
	"github.com/Harish050696/cardvault/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the cardvault HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
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
	cardRepo := postgres.NewCardRepository(db)

	authService := service.NewAuth(userRepo, logger)

	if cfg.Seed.OnStart {
		seedUsers, err := cfg.Seed.ParseUsers()
		if err != nil {
			logger.Fatal("failed to parse seed users", "error", err)
		}
		if err := authService.Seed(ctx, seedUsers); err != nil {
			logger.Fatal("failed to seed users", "error", err)
		}
	}

	extractor := ocr.NewTesseract(cfg.OCR.Languages...)
	defer extractor.Close()

	cardService := service.NewCards(cardRepo, extractor, logger)

	sessions := session.NewManager(authService, cardService)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	ctxMgr := httpctx.NewManager()

	handler := router.New(sessions, tokenManager, ctxMgr, logger).Register()
	httpServer := server.NewHTTPServer(handler, cfg.HTTP.Addr)

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
		logger.Info("starting server", "address", s.Address())
		if err := s.Start(sl); err != nil {
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
	return nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
