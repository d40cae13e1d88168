package quote

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cotizaexport/cotizaexport/internal/platform/httpx"
	"github.com/cotizaexport/cotizaexport/internal/shared"
)

// Oracle is the remote estimation service. One call produces a whole
// report; the caller never retries.
type Oracle interface {
	GenerateQuotation(ctx context.Context, req ShipmentRequest) (*QuotationReport, error)
}

// HistoryRecorder records a successful result. Implementations must not
// fail the quotation flow; persistence problems are theirs to log.
type HistoryRecorder interface {
	Record(ctx context.Context, clientID string, id int64, req ShipmentRequest, report QuotationReport)
}

// ValidationError carries per-field messages back to the form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

func (e *ValidationError) Unwrap() error { return httpx.ErrValidation }

// Service runs the quotation workflow: validate, call the oracle once,
// normalize, verify, record.
type Service struct {
	oracle  Oracle
	history HistoryRecorder
	gate    *shared.InflightGate
	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewService constructs the workflow service. timeout bounds the oracle
// round trip.
func NewService(oracle Oracle, history HistoryRecorder, gate *shared.InflightGate, logger *slog.Logger, timeout time.Duration) *Service {
	return &Service{
		oracle:  oracle,
		history: history,
		gate:    gate,
		logger:  logger,
		timeout: timeout,
		now:     time.Now,
	}
}

const workflowName = "quotation"

// Generate validates req and produces a normalized, verified report.
// The incoterm precondition is checked before anything else; when it
// fails the oracle is never invoked. One attempt per client at a time.
func (s *Service) Generate(ctx context.Context, clientID string, req ShipmentRequest) (*QuotationReport, error) {
	if !RequireIncoterms(&req) {
		return nil, fmt.Errorf("%w: %s", httpx.ErrValidation, MsgIncotermRequired)
	}
	if fields := ValidateShipmentRequest(&req); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	release, err := s.gate.Acquire(workflowName, clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: ya hay una cotización en curso", httpx.ErrBusy)
	}
	defer release()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	report, err := s.oracle.GenerateQuotation(callCtx, req)
	if err != nil {
		s.logger.Error("generate quotation", slog.String("client", clientID), slog.Any("error", err))
		return nil, err
	}

	Normalize(report)
	if err := VerifyReport(report); err != nil {
		s.logger.Error("report failed verification", slog.String("client", clientID), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", httpx.ErrSchema, err)
	}

	if s.history != nil {
		s.history.Record(ctx, clientID, s.now().UnixMilli(), req, *report)
	}
	return report, nil
}
