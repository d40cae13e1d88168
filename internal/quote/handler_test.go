package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cotizaexport/cotizaexport/internal/platform/httpx"
	"github.com/cotizaexport/cotizaexport/internal/shared"
	_ "github.com/cotizaexport/cotizaexport/testing"
)

func newTestRouter(oracle Oracle) http.Handler {
	svc := NewService(oracle, nil, shared.NewInflightGate(), slog.Default(), time.Second)
	handler := NewHandler(slog.Default(), svc)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func postQuotation(t *testing.T, router http.Handler, req ShipmentRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(GenerateRequest{FormData: req})
	require.NoError(t, err)
	httpReq := httptest.NewRequest(http.MethodPost, "/quotations", bytes.NewReader(body))
	httpReq = httpReq.WithContext(shared.ContextWithClientID(httpReq.Context(), "client-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)
	return rec
}

func TestGenerateEndpointReturnsReport(t *testing.T) {
	router := newTestRouter(&stubOracle{report: verifiableReport()})

	rec := postQuotation(t, router, validRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	var report QuotationReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Quotations, 2)
	assert.Equal(t, IncotermEXW, report.Quotations[0].Incoterm)
	assert.Equal(t, FreightNotApplicable, report.Quotations[0].Freight)
}

func TestGenerateEndpointRejectsMissingIncoterms(t *testing.T) {
	oracle := &stubOracle{report: verifiableReport()}
	router := newTestRouter(oracle)

	req := validRequest()
	req.Incoterms = nil
	rec := postQuotation(t, router, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var problem httpx.ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Contains(t, problem.Detail, "Por favor, selecciona al menos un Incoterm para cotizar.")
	assert.Equal(t, 0, oracle.callCount())
}

func TestGenerateEndpointReturnsFieldErrors(t *testing.T) {
	router := newTestRouter(&stubOracle{report: verifiableReport()})

	req := validRequest()
	req.Correo = "sin-arroba"
	rec := postQuotation(t, router, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var problem httpx.ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "Formato de correo inválido.", problem.Fields["correo"])
}

func TestGenerateEndpointMapsOracleTimeoutTo504(t *testing.T) {
	router := newTestRouter(timeoutOracle{})

	rec := postQuotation(t, router, validRequest())
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestGenerateEndpointRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(&stubOracle{report: verifiableReport()})

	httpReq := httptest.NewRequest(http.MethodPost, "/quotations", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httpReq)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// timeoutOracle reports what the Gemini client reports when the deadline
// expires mid-call.
type timeoutOracle struct{}

func (timeoutOracle) GenerateQuotation(ctx context.Context, req ShipmentRequest) (*QuotationReport, error) {
	return nil, httpx.ErrUpstreamTimeout
}
