package grpc

import (
	"fmt"
	"log/slog"
	"net"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServerConfig tunes the gRPC server.
type ServerConfig struct {
	ServiceName string
	Reflection  bool
	Meter       metric.Meter                     // nil disables metrics
	Credentials credentials.TransportCredentials // nil serves plaintext
}

// Server wraps a gRPC server with the obligation handler registered.
type Server struct {
	gs          *grpc.Server
	health      *health.Server
	serviceName string
	logger      *slog.Logger
}

// NewServer creates and configures the gRPC server.
func NewServer(handler ObligationServiceServer, logger *slog.Logger, cfg ServerConfig) (*Server, error) {
	meter := cfg.Meter
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("")
	}
	m, err := newRequestMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("create request metrics: %w", err)
	}

	serverOpts := []grpc.ServerOption{grpc.ChainUnaryInterceptor(unaryInterceptor(logger, m))}
	if cfg.Credentials != nil {
		serverOpts = append(serverOpts, grpc.Creds(cfg.Credentials))
		logger.Info("gRPC TLS enabled")
	} else {
		logger.Info("gRPC TLS not configured, running without TLS")
	}

	gs := grpc.NewServer(serverOpts...)

	// Register gRPC health check.
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(gs, healthSrv)
	healthSrv.SetServingStatus(cfg.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthSrv.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)

	if cfg.Reflection {
		reflection.Register(gs)
	}

	RegisterObligationServiceServer(gs, handler)

	return &Server{
		gs:          gs,
		health:      healthSrv,
		serviceName: cfg.ServiceName,
		logger:      logger,
	}, nil
}

// Serve starts the gRPC server on the specified address.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.ServeListener(lis)
}

// ServeListener serves on an existing listener.
func (s *Server) ServeListener(lis net.Listener) error {
	s.logger.Info("gRPC server listening", "addr", lis.Addr().String())
	return s.gs.Serve(lis)
}

// GracefulStop marks the service as not serving and stops the server gracefully.
func (s *Server) GracefulStop() {
	s.logger.Info("gRPC server shutting down")
	s.health.Shutdown()
	s.gs.GracefulStop()
}
