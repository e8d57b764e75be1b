package soap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/order-gateway/internal/domain"
	"github.com/jsamuelsen/order-gateway/internal/platform/logging"
)

// instrumentationName is used for OpenTelemetry tracer and meter.
const instrumentationName = "github.com/jsamuelsen/order-gateway/internal/adapters/clients/soap"

// Factory creates one Client per invocation.
type Factory interface {
	NewClient() *Client
}

// ClientFactory builds clients from a fixed binding configuration.
type ClientFactory struct {
	cfg Config
}

// NewClientFactory creates a factory for the given binding.
func NewClientFactory(cfg Config) *ClientFactory {
	return &ClientFactory{cfg: cfg}
}

// NewClient returns a fresh client in the Created state.
func (f *ClientFactory) NewClient() *Client {
	return NewClient(f.cfg)
}

// FaultMapper turns a backend Fault into a typed domain error. The
// mapping policy lives with the service contract, not with transport.
type FaultMapper func(fault *Fault) error

// InvokerConfig configures an Invoker.
type InvokerConfig struct {
	// Factory creates the per-call clients. Required.
	Factory Factory

	// ServiceName identifies the backend for logging, tracing, and
	// upstream errors.
	ServiceName string

	// MapFault classifies backend faults. If nil, every fault becomes
	// a domain.UpstreamError.
	MapFault FaultMapper

	// Logger is an optional logger. If nil, a default logger is used.
	Logger *slog.Logger
}

// Invoker runs backend operations with the per-call client discipline:
// create, call, release. Release is guaranteed and never panics; a
// faulted client is aborted while a healthy one is closed, falling back
// to abort if the close itself fails.
type Invoker struct {
	factory     Factory
	serviceName string
	mapFault    FaultMapper
	logger      *slog.Logger

	tracer trace.Tracer

	callDuration metric.Float64Histogram
	callTotal    metric.Int64Counter
}

// NewInvoker creates a new Invoker.
func NewInvoker(cfg InvokerConfig) (*Invoker, error) {
	if cfg.Factory == nil {
		return nil, errors.New("factory is required")
	}

	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(
		slog.String("component", "soap.Invoker"),
		slog.String("downstream", cfg.ServiceName),
	)

	meter := otel.Meter(instrumentationName)

	callDuration, err := meter.Float64Histogram(
		"soap.client.call.duration",
		metric.WithDescription("Duration of SOAP backend calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	callTotal, err := meter.Int64Counter(
		"soap.client.call.total",
		metric.WithDescription("Total number of SOAP backend calls"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating call counter: %w", err)
	}

	return &Invoker{
		factory:      cfg.Factory,
		serviceName:  cfg.ServiceName,
		mapFault:     cfg.MapFault,
		logger:       logger,
		tracer:       otel.Tracer(instrumentationName),
		callDuration: callDuration,
		callTotal:    callTotal,
	}, nil
}

// Invoke runs one backend operation through a client created for this
// call alone. The call function receives the fresh client and performs
// exactly one Call on it; Invoke releases the client afterwards in
// every outcome and maps failures to typed domain errors.
func Invoke[Req, Resp any](
	ctx context.Context,
	inv *Invoker,
	operation string,
	req Req,
	call func(ctx context.Context, client *Client, req Req) (Resp, error),
) (Resp, error) {
	var zero Resp

	client := inv.factory.NewClient()
	defer inv.release(ctx, client, operation)

	ctx, span := inv.tracer.Start(ctx, fmt.Sprintf("SOAP %s %s", inv.serviceName, operation),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("rpc.system", "soap"),
			attribute.String("rpc.service", inv.serviceName),
			attribute.String("rpc.method", operation),
		),
	)
	defer span.End()

	logger := logging.FromContext(ctx).With(
		slog.String("downstream", inv.serviceName),
		slog.String("operation", operation),
	)

	start := time.Now()
	resp, err := call(ctx, client, req)
	duration := time.Since(start)

	result := "success"
	if err != nil {
		result = "error"
	}

	attrs := metric.WithAttributes(
		attribute.String("rpc.service", inv.serviceName),
		attribute.String("rpc.method", operation),
		attribute.String("result", result),
	)
	inv.callDuration.Record(ctx, duration.Seconds(), attrs)
	inv.callTotal.Add(ctx, 1, attrs)

	if err != nil {
		mapped := inv.mapError(operation, err)
		span.RecordError(mapped)
		span.SetStatus(codes.Error, mapped.Error())
		logger.Warn("backend call failed",
			slog.Duration("duration", duration),
			slog.String("client_state", client.State().String()),
			slog.Any("error", mapped),
		)

		return zero, mapped
	}

	span.SetStatus(codes.Ok, "")
	logger.Debug("backend call completed", slog.Duration("duration", duration))

	return resp, nil
}

// Ping checks backend reachability using the same per-call discipline
// as regular operations.
func (inv *Invoker) Ping(ctx context.Context) error {
	client := inv.factory.NewClient()
	defer inv.release(ctx, client, "Ping")

	return client.Ping(ctx)
}

// release disposes of a client after its single invocation. A faulted
// client gets aborted; any other state is closed gracefully, with abort
// as the fallback when close fails. Release never panics and never
// surfaces an error to the caller.
func (inv *Invoker) release(ctx context.Context, client *Client, operation string) {
	defer func() {
		if r := recover(); r != nil {
			inv.logger.Error("panic while releasing client",
				slog.String("operation", operation),
				slog.Any("panic", r),
			)
		}
	}()

	if client.State() == StateFaulted {
		client.Abort()
		logging.FromContext(ctx).Debug("aborted faulted client",
			slog.String("operation", operation),
		)

		return
	}

	if err := client.Close(); err != nil {
		inv.logger.Warn("closing client failed, aborting",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
		client.Abort()
	}
}

// mapError translates a raw call failure into the domain taxonomy.
func (inv *Invoker) mapError(operation string, err error) error {
	var fault *Fault
	if errors.As(err, &fault) {
		if inv.mapFault != nil {
			return inv.mapFault(fault)
		}

		return domain.NewUpstreamError(inv.serviceName, fault.Message)
	}

	// Cancellation aborts the in-flight exchange the same way an
	// expired deadline does, so both surface as timeouts.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || isNetTimeout(err) {
		return domain.NewTimeoutError(operation)
	}

	return domain.NewUpstreamError(inv.serviceName, err.Error())
}

// isNetTimeout reports whether err is a network-level timeout.
func isNetTimeout(err error) bool {
	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}
