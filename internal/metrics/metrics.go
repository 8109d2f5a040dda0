// Package metrics records authentication flow outcomes as OpenTelemetry counters.
package metrics

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/dtroode/auth-service/internal/model"
)

// Operation names used as the "operation" attribute.
const (
	OpSignUp        = "sign_up"
	OpLogIn         = "log_in"
	OpRefresh       = "refresh"
	OpLogOut        = "log_out"
	OpExternalLogIn = "external_log_in"
	OpRequestReset  = "request_reset"
	OpRedeemReset   = "redeem_reset"
)

var outcomes = []struct {
	err   error
	label string
}{
	{model.ErrAccountAlreadyExists, "account_exists"},
	{model.ErrAccountNotFound, "account_not_found"},
	{model.ErrInvalidCredentials, "invalid_credentials"},
	{model.ErrInvalidToken, "invalid_token"},
	{model.ErrTooManyRequests, "rate_limited"},
	{model.ErrResetTokenAlreadyIssued, "already_issued"},
	{model.ErrNoTokenProvided, "no_token"},
	{model.ErrTokenExpired, "token_expired"},
	{model.ErrExternalIdentity, "external_rejected"},
}

// Metrics holds the counters for auth flows.
type Metrics struct {
	operations metric.Int64Counter
}

// New registers instruments on meter. A nil meter records nothing.
func New(meter metric.Meter) (*Metrics, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("auth-service")
	}

	operations, err := meter.Int64Counter(
		"auth_operations_total",
		metric.WithDescription("Authentication and password reset operations by outcome."),
	)
	if err != nil {
		return nil, fmt.Errorf("create operations counter: %w", err)
	}

	return &Metrics{operations: operations}, nil
}

// Record counts one finished operation. err selects the outcome label.
func (m *Metrics) Record(ctx context.Context, operation string, err error) {
	if m == nil {
		return
	}
	m.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", Outcome(err)),
	))
}

// Outcome maps an error returned by a flow to a low-cardinality label.
func Outcome(err error) string {
	if err == nil {
		return "success"
	}
	for _, o := range outcomes {
		if errors.Is(err, o.err) {
			return o.label
		}
	}
	return "error"
}
