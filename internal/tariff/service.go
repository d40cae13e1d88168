// Package tariff resolves product descriptions to Peruvian tariff codes
// through the oracle.
package tariff

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/cotizaexport/cotizaexport/internal/platform/httpx"
	"github.com/cotizaexport/cotizaexport/internal/quote"
)

// Oracle answers tariff-code lookups. The answer is raw text; the
// service checks the code format before returning it.
type Oracle interface {
	LookupTariffCode(ctx context.Context, productDescription string) (string, error)
}

// Service deduplicates concurrent lookups for the same description: the
// oracle is asked once and every waiter shares the answer.
type Service struct {
	oracle  Oracle
	logger  *slog.Logger
	timeout time.Duration
	group   singleflight.Group
}

// NewService constructs the lookup service.
func NewService(oracle Oracle, logger *slog.Logger, timeout time.Duration) *Service {
	return &Service{oracle: oracle, logger: logger, timeout: timeout}
}

// Lookup returns the most likely tariff code for the description.
func (s *Service) Lookup(ctx context.Context, productDescription string) (string, error) {
	desc := strings.TrimSpace(productDescription)
	if desc == "" {
		return "", fmt.Errorf("%w: la descripción del producto es requerida", httpx.ErrValidation)
	}

	resultChan := s.group.DoChan(desc, func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		return s.oracle.LookupTariffCode(callCtx, desc)
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-resultChan:
		if res.Err != nil {
			s.logger.Error("tariff lookup", slog.String("description", desc), slog.Any("error", res.Err))
			return "", res.Err
		}
		code := strings.TrimSpace(res.Val.(string))
		if !quote.ValidTariffCode(code) {
			s.logger.Error("oracle returned invalid tariff code", slog.String("code", code))
			return "", fmt.Errorf("%w: formato de partida arancelaria inválido recibido de la IA", httpx.ErrSchema)
		}
		return code, nil
	}
}
