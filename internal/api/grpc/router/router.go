package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/NapAndCommit/still-figuring-it-out/internal/api/grpc/handler"
	"github.com/NapAndCommit/still-figuring-it-out/internal/api/grpc/journalpb"
	"github.com/NapAndCommit/still-figuring-it-out/internal/api/grpc/middleware"
	"github.com/NapAndCommit/still-figuring-it-out/internal/logger"
	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
)

// Services groups what the journal handler depends on.
type Services struct {
	Reflections handler.ReflectionService
	LifeAreas   handler.LifeAreaService
	Patterns    handler.PatternService
	Exports     handler.ExportService
}

// Router represents a gRPC router for journal operations.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	services       Services
	tokenService   middleware.TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	services Services,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// requiresAuth matches every method except health checks.
func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	return !strings.HasPrefix(c.FullMethod(), "/"+grpc_health_v1.Health_ServiceDesc.ServiceName+"/")
}

// Register registers all gRPC services and middleware.
// It sets up the gRPC server with request logging and authentication interceptors.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
		grpc.ChainStreamInterceptor(
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
	)
	r.registerJournalRoutes(s)
	r.registerHealth(s)

	return s
}

func (r *Router) registerJournalRoutes(server *grpc.Server) {
	journalHandler := handler.NewJournal(
		r.services.Reflections,
		r.services.LifeAreas,
		r.services.Patterns,
		r.services.Exports,
		r.contextManager,
		r.logger,
	)
	journalpb.RegisterJournalServer(server, journalHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	healthServer := health.NewServer()
	healthServer.SetServingStatus(journalpb.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(server, healthServer)
}
