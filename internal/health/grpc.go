package health

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// grpcService answers Check from a live store ping instead of a status table.
// Only the overall service ("") is known.
type grpcService struct {
	healthpb.UnimplementedHealthServer
	checker *Checker
}

func (s *grpcService) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if req.GetService() != "" {
		return nil, status.Error(codes.NotFound, "unknown service")
	}
	if err := s.checker.Ready(ctx); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("grpc health: store unreachable")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}

// NewGRPCServer returns a server that only carries grpc.health.v1.Health.
func NewGRPCServer(checker *Checker, logger zerolog.Logger) *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			Logging(logger),
		),
	)
	healthpb.RegisterHealthServer(srv, &grpcService{checker: checker})
	return srv
}

// Logging attaches logger to the call context and logs each call at debug,
// failures at warn.
func Logging(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		ctx = logger.WithContext(ctx)

		resp, err := next(ctx, req)

		ev := logger.Debug()
		if err != nil {
			ev = logger.Warn().Err(err)
		}
		ev.Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Msg("grpc call")
		return resp, err
	}
}
