// Package quote implements the export quotation workflow: form
// validation, the oracle round trip, canonical ordering, and
// post-response verification.
package quote

import "strings"

// Incoterm is a trade term: the point where cost and risk transfer from
// seller to buyer.
type Incoterm string

const (
	IncotermEXW Incoterm = "EXW"
	IncotermFOB Incoterm = "FOB"
	IncotermCIF Incoterm = "CIF"
)

// FreightMode is the international transport method priced in a
// quotation row.
type FreightMode string

const (
	FreightMaritime      FreightMode = "Marítimo"
	FreightAir           FreightMode = "Aéreo"
	FreightNotApplicable FreightMode = "No Aplica"
)

// ShippingOption is a scenario-analysis shipping method.
type ShippingOption string

const (
	OptionMaritime ShippingOption = "Marítimo"
	OptionAir      ShippingOption = "Aéreo"
	OptionCourier  ShippingOption = "Courier"
)

// QuantityUnit enumerates the accepted quantity units.
type QuantityUnit string

const (
	UnitTonnes    QuantityUnit = "toneladas"
	UnitKilograms QuantityUnit = "kilogramos"
	UnitPieces    QuantityUnit = "unidades"
)

// ShipmentRequest is the validated form a client submits for quotation.
// JSON field names follow the wire contract the browser app uses.
type ShipmentRequest struct {
	Product            string       `json:"product" validate:"required"`
	TariffCode         string       `json:"tariffCode" validate:"required,tariffcode"`
	DestinationCountry string       `json:"destinationCountry" validate:"required"`
	Quantity           float64      `json:"quantity" validate:"gt=0"`
	QuantityUnit       QuantityUnit `json:"quantityUnit" validate:"required,oneof=toneladas kilogramos unidades"`
	ProductionValue    float64      `json:"productionValue" validate:"gte=0"`
	Incoterms          []Incoterm   `json:"incoterms" validate:"dive,oneof=EXW FOB CIF"`
	Empresa            string       `json:"empresa" validate:"required"`
	RUC                string       `json:"ruc" validate:"required,ruc"`
	Direccion          string       `json:"direccion" validate:"required"`
	Correo             string       `json:"correo" validate:"required,emailshape"`
}

// Normalize trims surrounding whitespace from every text field so the
// required checks see the effective value.
func (r *ShipmentRequest) Normalize() {
	r.Product = strings.TrimSpace(r.Product)
	r.TariffCode = strings.TrimSpace(r.TariffCode)
	r.DestinationCountry = strings.TrimSpace(r.DestinationCountry)
	r.Empresa = strings.TrimSpace(r.Empresa)
	r.RUC = strings.TrimSpace(r.RUC)
	r.Direccion = strings.TrimSpace(r.Direccion)
	r.Correo = strings.TrimSpace(r.Correo)
}

// CostBreakdown itemizes a quotation total in USD.
type CostBreakdown struct {
	ProductionValue float64 `json:"valorProduccion"`
	LocalTransport  float64 `json:"transporteLocal"`
	ExportCustoms   float64 `json:"gastosAduanaExportacion"`
	IntlFreight     float64 `json:"fleteInternacional"`
	Insurance       float64 `json:"seguro"`
}

// Sum returns the total of all breakdown components.
func (b CostBreakdown) Sum() float64 {
	return b.ProductionValue + b.LocalTransport + b.ExportCustoms + b.IntlFreight + b.Insurance
}

// QuotationRow is one priced incoterm/freight combination. Immutable once
// received from the oracle.
type QuotationRow struct {
	Incoterm    Incoterm      `json:"incoterm"`
	Freight     FreightMode   `json:"flete"`
	TotalCost   float64       `json:"costoTotal"`
	TransitTime string        `json:"tiempoTransito"`
	Breakdown   CostBreakdown `json:"desgloseCostos"`
}

// Recommendation groups the advisory strings returned with a report.
type Recommendation struct {
	Seasonal  string `json:"seasonal"`
	Container string `json:"container"`
	Strategy  string `json:"strategy"`
}

// ScenarioRow compares one shipping option for the requested volume.
type ScenarioRow struct {
	Option        ShippingOption `json:"option"`
	Rank          int            `json:"rank"`
	IsRecommended bool           `json:"isRecommended"`
	EstimatedCost string         `json:"costoEstimado"`
	EstimatedTime string         `json:"tiempoEstimado"`
	Analysis      string         `json:"analisisCualitativo"`
	Pros          []string       `json:"pros"`
	Cons          []string       `json:"contras"`
}

// QuotationReport is the full oracle answer for one shipment request,
// produced atomically by a single call.
type QuotationReport struct {
	Quotations       []QuotationRow `json:"quotations"`
	Recommendations  Recommendation `json:"recommendations"`
	ScenarioAnalysis []ScenarioRow  `json:"scenarioAnalysis"`
}
