package grpc

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDKey is the metadata key carrying the request id in both
// directions.
const RequestIDKey = "x-request-id"

type requestIDCtxKey struct{}

// RequestIDFromContext returns the id assigned by the interceptor.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey{}).(string)
	return id
}

// requestMetrics holds the instruments recorded for every unary call.
type requestMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func newRequestMetrics(meter metric.Meter) (requestMetrics, error) {
	requests, err := meter.Int64Counter("obligation_grpc_requests",
		metric.WithDescription("Unary gRPC calls handled, by method and status code."))
	if err != nil {
		return requestMetrics{}, err
	}
	duration, err := meter.Float64Histogram("obligation_grpc_request_duration",
		metric.WithDescription("Unary gRPC call latency."),
		metric.WithUnit("s"))
	if err != nil {
		return requestMetrics{}, err
	}
	return requestMetrics{requests: requests, duration: duration}, nil
}

// unaryInterceptor tags each call with a request id, then logs and measures it.
func unaryInterceptor(logger *slog.Logger, m requestMetrics) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		start := time.Now()

		id := incomingRequestID(ctx)
		ctx = context.WithValue(ctx, requestIDCtxKey{}, id)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDKey, id)) //nolint:errcheck // header is best effort

		resp, err := handler(ctx, req)

		code := status.Code(err)
		elapsed := time.Since(start)
		attrs := metric.WithAttributes(
			attribute.String("method", info.FullMethod),
			attribute.String("code", code.String()),
		)
		m.requests.Add(ctx, 1, attrs)
		m.duration.Record(ctx, elapsed.Seconds(), attrs)

		level := slog.LevelInfo
		if code != codes.OK {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "grpc request",
			"method", info.FullMethod,
			"request_id", id,
			"code", code.String(),
			"duration_ms", elapsed.Milliseconds(),
		)

		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(RequestIDKey); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	return uuid.NewString()
}
