package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"tradewind/internal/domain/documents/quotation"
)

// CreateQuotationRequest creates a quotation.
type CreateQuotationRequest struct {
	Date           *time.Time      `json:"date,omitempty"`
	CounterpartyID string          `json:"counterpartyId" binding:"required,uuid"`
	Currency       string          `json:"currency,omitempty"`
	Comment        string          `json:"comment,omitempty"`
	ValidUntil     *time.Time      `json:"validUntil,omitempty"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	ShippingAmount decimal.Decimal `json:"shippingAmount"`
	Lines          []LineRequest   `json:"lines" binding:"omitempty,dive"`
}

// ToEntity converts the request to a domain quotation.
func (r *CreateQuotationRequest) ToEntity() (*quotation.Quotation, error) {
	q := quotation.New(r.CounterpartyID, r.Currency)
	if r.Date != nil {
		q.Date = *r.Date
	}
	q.Comment = r.Comment
	q.ValidUntil = r.ValidUntil
	q.DiscountAmount = r.DiscountAmount
	q.ShippingAmount = r.ShippingAmount

	lines, err := ToLines(r.Lines)
	if err != nil {
		return nil, err
	}
	q.SetLines(lines)
	return q, nil
}

// UpdateQuotationRequest patches the quotation header.
type UpdateQuotationRequest struct {
	UpdateHeaderRequest
	ValidUntil *time.Time `json:"validUntil,omitempty"`
}

// ApplyTo applies the patch to an existing quotation.
func (r *UpdateQuotationRequest) ApplyTo(q *quotation.Quotation) {
	r.UpdateHeaderRequest.ApplyTo(&q.TradeDocument)
	if r.ValidUntil != nil {
		q.ValidUntil = r.ValidUntil
	}
}

// QuotationResponse represents a quotation in API responses.
type QuotationResponse struct {
	DocumentResponse
	Status     string     `json:"status"`
	ValidUntil *time.Time `json:"validUntil,omitempty"`
}

// FromQuotation creates a response from a domain quotation.
func FromQuotation(q *quotation.Quotation) *QuotationResponse {
	return &QuotationResponse{
		DocumentResponse: FromTradeDocument(&q.TradeDocument),
		Status:           string(q.Status),
		ValidUntil:       q.ValidUntil,
	}
}
