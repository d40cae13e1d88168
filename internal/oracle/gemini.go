// Package oracle wraps the hosted language model behind typed calls.
// The service here is the only holder of the model credential; clients
// never see it.
package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/cotizaexport/cotizaexport/internal/document"
	"github.com/cotizaexport/cotizaexport/internal/observability"
	"github.com/cotizaexport/cotizaexport/internal/platform/httpx"
	"github.com/cotizaexport/cotizaexport/internal/quote"
)

const defaultModel = "gemini-2.5-flash"

// quotationTemperature keeps cost estimates consistent between calls.
const quotationTemperature float32 = 0.3

// Gemini calls the Gemini API for quotations, tariff lookups, and
// document drafting. Every call is a single attempt; failures are never
// retried here.
type Gemini struct {
	client  *genai.Client
	model   string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewGemini constructs the oracle client. A missing credential is a
// configuration error so it is never mistaken for a transient failure.
func NewGemini(ctx context.Context, apiKey, model string, logger *slog.Logger, metrics *observability.Metrics) (*Gemini, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: oracle credential missing", httpx.ErrConfiguration)
	}
	if model == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("%w: create genai client: %v", httpx.ErrConfiguration, err)
	}
	return &Gemini{client: client, model: model, logger: logger, metrics: metrics}, nil
}

// GenerateQuotation asks the model for a full quotation report
// constrained by the response schema. The report is returned as decoded;
// ordering and invariant checks belong to the caller.
func (g *Gemini) GenerateQuotation(ctx context.Context, req quote.ShipmentRequest) (*quote.QuotationReport, error) {
	text, err := g.generate(ctx, "generateQuotation", quotationPrompt(req), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   quotationSchema,
		Temperature:      genai.Ptr(quotationTemperature),
	})
	if err != nil {
		return nil, err
	}
	var report quote.QuotationReport
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		g.logger.Error("oracle returned malformed json", slog.String("action", "generateQuotation"), slog.Any("error", err))
		return nil, fmt.Errorf("%w: se recibió una respuesta malformada de la IA", httpx.ErrSchema)
	}
	return &report, nil
}

// LookupTariffCode asks the model for the most likely Peruvian tariff
// code. Format enforcement lives in the tariff service.
func (g *Gemini) LookupTariffCode(ctx context.Context, productDescription string) (string, error) {
	return g.generate(ctx, "getTariffCode", tariffPrompt(productDescription), nil)
}

// GenerateDocument asks the model to draft one printable document and
// returns the markup as opaque text.
func (g *Gemini) GenerateDocument(ctx context.Context, kind document.Kind, data document.Request) (string, error) {
	return g.generate(ctx, "generateDocument", documentPrompt(kind, data), nil)
}

func (g *Gemini) generate(ctx context.Context, action, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		g.metrics.ObserveOracleCall(action, "error")
		return "", classify(action, err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		g.metrics.ObserveOracleCall(action, "empty")
		g.logger.Error("oracle returned empty response", slog.String("action", action))
		return "", fmt.Errorf("%w: la IA devolvió una respuesta vacía", httpx.ErrSchema)
	}
	g.metrics.ObserveOracleCall(action, "ok")
	return text, nil
}

func classify(action string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: la solicitud a la IA excedió el tiempo de espera", httpx.ErrUpstreamTimeout, action)
	}
	return fmt.Errorf("%w: %s: no se pudo contactar al servicio de IA: %v", httpx.ErrUpstream, action, err)
}
