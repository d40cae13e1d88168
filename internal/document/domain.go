// Package document generates printable shipping documents through the
// oracle: commercial invoices and packing lists.
package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/cotizaexport/cotizaexport/internal/quote"
)

// Kind selects which document the oracle drafts.
type Kind string

const (
	KindCommercialInvoice Kind = "commercialInvoice"
	KindPackingList       Kind = "packingList"
)

// Valid reports whether k names a supported document kind.
func (k Kind) Valid() bool {
	return k == KindCommercialInvoice || k == KindPackingList
}

// Title returns the human-readable document title used in messages.
func (k Kind) Title() string {
	if k == KindCommercialInvoice {
		return "Factura Comercial"
	}
	return "Packing List"
}

// ImporterDetails identifies the buyer on the generated document.
type ImporterDetails struct {
	CompanyName string `json:"companyName" validate:"required"`
	TaxID       string `json:"taxId" validate:"required"`
	Address     string `json:"address" validate:"required"`
}

// PackagingDetails describes how the goods are packed.
type PackagingDetails struct {
	PackageCount  int     `json:"packageCount" validate:"gt=0"`
	PackageType   string  `json:"packageType" validate:"required"`
	NetWeightKg   float64 `json:"netWeightKg" validate:"gt=0"`
	GrossWeightKg float64 `json:"grossWeightKg" validate:"gt=0"`
	Dimensions    string  `json:"dimensions" validate:"required"`
}

// ShipmentDetails carries the chosen quotation terms onto the document.
type ShipmentDetails struct {
	InvoiceNumber string            `json:"invoiceNumber"`
	IssueDate     string            `json:"issueDate"`
	Incoterm      quote.Incoterm    `json:"incoterm" validate:"required,oneof=EXW FOB CIF"`
	TotalValue    float64           `json:"totalValue" validate:"gte=0"`
	FreightType   quote.FreightMode `json:"freightType"`
}

// Request is everything the oracle needs to draft one document. Used
// transiently; never persisted.
type Request struct {
	Exporter  quote.ShipmentRequest `json:"exporter"`
	Importer  ImporterDetails       `json:"importer"`
	Shipment  ShipmentDetails       `json:"shipment"`
	Packaging PackagingDetails      `json:"packaging"`
}

// ApplyDefaults fills the document number and issue date when the user
// left them blank.
func (r *Request) ApplyDefaults(now time.Time) {
	if strings.TrimSpace(r.Shipment.InvoiceNumber) == "" {
		r.Shipment.InvoiceNumber = fmt.Sprintf("INV-%d", now.Unix())
	}
	if strings.TrimSpace(r.Shipment.IssueDate) == "" {
		r.Shipment.IssueDate = now.Format("2006-01-02")
	}
}
