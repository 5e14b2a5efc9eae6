package metrics

import (
	"context"
	"time"

	"github.com/andrescamacho/nations-go/internal/application/mediator"
	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// PrometheusMiddleware records duration and outcome of every mediator dispatch.
// Validation, not-found and admission errors count as "rejected", anything else as "error".
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)

		collector.RecordCommandExecution(
			mediator.RequestName(request),
			time.Since(start).Seconds(),
			outcome(err),
		)

		return response, err
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case shared.IsValidationError(err), shared.IsNotFoundError(err), country.IsAdmissionError(err):
		return "rejected"
	default:
		return "error"
	}
}
