package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"tradewind/internal/core/id"
	"tradewind/internal/domain/documents"
)

// --- Shared line DTOs ---

// LineRequest is one document line in create/update requests. The same
// shape serves every document type.
type LineRequest struct {
	ProductID   string          `json:"productId" binding:"required,uuid"`
	UnitID      *string         `json:"unitId,omitempty"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	DiscountPct decimal.Decimal `json:"discountPct"`
	TaxRate     decimal.Decimal `json:"taxRate"`
}

// ToLine converts the request to a domain line.
func (r *LineRequest) ToLine() (documents.Line, error) {
	productID, err := id.Parse(r.ProductID)
	if err != nil {
		return documents.Line{}, err
	}
	line := documents.NewLine(productID, r.Quantity, r.UnitPrice)
	line.UnitID = r.UnitID
	line.DiscountPct = r.DiscountPct
	line.TaxRate = r.TaxRate
	return line, nil
}

// ToLines converts a slice of line requests.
func ToLines(reqs []LineRequest) ([]documents.Line, error) {
	lines := make([]documents.Line, 0, len(reqs))
	for _, r := range reqs {
		line, err := r.ToLine()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// LineResponse is one document line in API responses.
type LineResponse struct {
	ID          string          `json:"id"`
	LineNo      int             `json:"lineNo"`
	ProductID   string          `json:"productId"`
	UnitID      *string         `json:"unitId,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	DiscountPct decimal.Decimal `json:"discountPct"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// FromLine creates a response from a domain line.
func FromLine(l *documents.Line) LineResponse {
	return LineResponse{
		ID:          l.ID.String(),
		LineNo:      l.LineNo,
		ProductID:   l.ProductID.String(),
		UnitID:      l.UnitID,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		DiscountPct: l.DiscountPct,
		TaxRate:     l.TaxRate,
		LineTotal:   l.LineTotal,
	}
}

// FromLines converts a slice of domain lines.
func FromLines(lines []documents.Line) []LineResponse {
	out := make([]LineResponse, len(lines))
	for i := range lines {
		out[i] = FromLine(&lines[i])
	}
	return out
}

// --- Shared header DTOs ---

// TotalsResponse carries the computed money fields of a document.
type TotalsResponse struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	ShippingAmount decimal.Decimal `json:"shippingAmount"`
	TaxesAmount    decimal.Decimal `json:"taxesAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
}

// FromTotals creates a response from domain totals.
func FromTotals(t documents.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:       t.Subtotal,
		DiscountAmount: t.DiscountAmount,
		ShippingAmount: t.ShippingAmount,
		TaxesAmount:    t.TaxesAmount,
		TotalAmount:    t.TotalAmount,
	}
}

// DocumentResponse is the header part shared by every document
// response. Type-specific responses embed it.
type DocumentResponse struct {
	ID             string         `json:"id"`
	Number         string         `json:"number"`
	Date           time.Time      `json:"date"`
	Posted         bool           `json:"posted"`
	PostedVersion  int            `json:"postedVersion,omitempty"`
	Currency       string         `json:"currency"`
	Comment        string         `json:"comment,omitempty"`
	CounterpartyID *string        `json:"counterpartyId,omitempty"`
	WarehouseID    *string        `json:"warehouseId,omitempty"`
	Totals         TotalsResponse `json:"totals"`
	Lines          []LineResponse `json:"lines,omitempty"`
	SkippedLines   int            `json:"skippedLines,omitempty"`
	Version        int            `json:"version"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// FromTradeDocument fills the shared header response fields.
func FromTradeDocument(d *documents.TradeDocument) DocumentResponse {
	return DocumentResponse{
		ID:             d.ID.String(),
		Number:         d.Number,
		Date:           d.Date,
		Posted:         d.Posted,
		PostedVersion:  d.PostedVersion,
		Currency:       d.Currency,
		Comment:        d.Comment,
		CounterpartyID: d.CounterpartyID,
		WarehouseID:    d.WarehouseID,
		Totals:         FromTotals(d.Totals),
		Lines:          FromLines(d.Lines),
		SkippedLines:   d.SkippedLines,
		Version:        d.Version,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// UpdateHeaderRequest patches the mutable header fields of a document.
// Nil fields are left unchanged.
type UpdateHeaderRequest struct {
	Date           *time.Time       `json:"date,omitempty"`
	CounterpartyID *string          `json:"counterpartyId,omitempty"`
	WarehouseID    *string          `json:"warehouseId,omitempty"`
	Currency       *string          `json:"currency,omitempty"`
	Comment        *string          `json:"comment,omitempty"`
	DiscountAmount *decimal.Decimal `json:"discountAmount,omitempty"`
	ShippingAmount *decimal.Decimal `json:"shippingAmount,omitempty"`
}

// ApplyTo applies the patch to the shared header.
func (r *UpdateHeaderRequest) ApplyTo(d *documents.TradeDocument) {
	if r.Date != nil {
		d.Date = *r.Date
	}
	if r.CounterpartyID != nil {
		d.CounterpartyID = r.CounterpartyID
	}
	if r.WarehouseID != nil {
		d.WarehouseID = r.WarehouseID
	}
	if r.Currency != nil {
		d.Currency = *r.Currency
	}
	if r.Comment != nil {
		d.Comment = *r.Comment
	}
	if r.DiscountAmount != nil {
		d.DiscountAmount = *r.DiscountAmount
	}
	if r.ShippingAmount != nil {
		d.ShippingAmount = *r.ShippingAmount
	}
}

// --- Payments ---

// PaymentRequest records a payment against an invoice.
type PaymentRequest struct {
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Method    string          `json:"method,omitempty"`
	Reference string          `json:"reference,omitempty"`
}

// PaymentResponse is one recorded payment in API responses.
type PaymentResponse struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method,omitempty"`
	Reference string          `json:"reference,omitempty"`
}
