package document

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cotizaexport/cotizaexport/internal/platform/httpx"
	"github.com/cotizaexport/cotizaexport/internal/quote"
	"github.com/cotizaexport/cotizaexport/internal/shared"
)

// Oracle drafts printable documents. The markup comes back as opaque
// text; no structural validation happens here.
type Oracle interface {
	GenerateDocument(ctx context.Context, kind Kind, data Request) (string, error)
}

// Service runs one document-generation attempt: Idle until Generate is
// called, Requesting while the oracle call is outstanding, then Ready or
// Failed. The gate keeps a client from entering Requesting twice; editing
// and resubmitting after a failure is just a fresh attempt once the prior
// one settled.
type Service struct {
	oracle  Oracle
	gate    *shared.InflightGate
	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewService constructs the service.
func NewService(oracle Oracle, gate *shared.InflightGate, logger *slog.Logger, timeout time.Duration) *Service {
	return &Service{
		oracle:  oracle,
		gate:    gate,
		logger:  logger,
		timeout: timeout,
		now:     time.Now,
	}
}

const workflowName = "document"

// Generate validates the request, fills defaults, and asks the oracle
// for the markup. Single attempt, no retry.
func (s *Service) Generate(ctx context.Context, clientID string, kind Kind, data Request) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: tipo de documento desconocido: %q", httpx.ErrValidation, kind)
	}
	data.ApplyDefaults(s.now())
	if err := quote.Validator().Struct(data); err != nil {
		return "", fmt.Errorf("%w: los datos del documento están incompletos", httpx.ErrValidation)
	}

	release, err := s.gate.Acquire(workflowName, clientID)
	if err != nil {
		return "", fmt.Errorf("%w: ya hay un documento en curso", httpx.ErrBusy)
	}
	defer release()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	markup, err := s.oracle.GenerateDocument(callCtx, kind, data)
	if err != nil {
		s.logger.Error("generate document",
			slog.String("client", clientID),
			slog.String("kind", string(kind)),
			slog.Any("error", err))
		return "", fmt.Errorf("no se pudo generar el documento: %s: %w", kind.Title(), err)
	}
	return markup, nil
}
