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

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"google.golang.org/grpc/reflection"

	grpcctx "github.com/NapAndCommit/still-figuring-it-out/internal/api/grpc/context"
	"github.com/NapAndCommit/still-figuring-it-out/internal/api/grpc/router"
	grpcServer "github.com/NapAndCommit/still-figuring-it-out/internal/api/grpc/server"
	"github.com/NapAndCommit/still-figuring-it-out/internal/config"
	"github.com/NapAndCommit/still-figuring-it-out/internal/logger"
	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
	"github.com/NapAndCommit/still-figuring-it-out/internal/pattern"
	"github.com/NapAndCommit/still-figuring-it-out/internal/prompt"
	"github.com/NapAndCommit/still-figuring-it-out/internal/repository/postgres"
	"github.com/NapAndCommit/still-figuring-it-out/internal/server"
	"github.com/NapAndCommit/still-figuring-it-out/internal/service"
	storage "github.com/NapAndCommit/still-figuring-it-out/internal/storage/minio"
	"github.com/NapAndCommit/still-figuring-it-out/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

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

	reflectionRepo := postgres.NewReflectionRepository(db)
	lifeAreaRepo := postgres.NewLifeAreaRepository(db)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	clock := service.ClockIn(cfg.Journal.Location())
	detector := pattern.NewDetector(pattern.DefaultTables())

	services := router.Services{
		Reflections: service.NewReflection(reflectionRepo, prompt.NewRotation(), clock, logger),
		LifeAreas:   service.NewLifeArea(lifeAreaRepo, logger),
		Patterns:    service.NewPatternAwareness(reflectionRepo, lifeAreaRepo, detector, logger),
		Exports:     service.NewExport(reflectionRepo, lifeAreaRepo, storageClient, clock, logger),
	}
	tokenService := service.NewTokenService(token.NewJWT(cfg.JWT.Secret), logger)

	grpcServer := registerGRPCServer(logger, services, tokenService, grpcctx.NewManager(), fmt.Sprintf(":%s", cfg.GRPC.Port))
	sl := server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "timezone", cfg.Journal.Timezone)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(grpcServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
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

func registerGRPCServer(
	logger *logger.Logger,
	services router.Services,
	tokenService *service.TokenService,
	ctxMgr model.ContextManager,
	addr string,
) *grpcServer.GRPCServer {
	r := router.New(services, tokenService, ctxMgr, logger)
	s := r.Register()

	reflection.Register(s)

	return grpcServer.NewGRPCServer(s, addr)
}
