package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"tradewind/internal/domain/documents/creditnote"
)

// CreateCreditNoteRequest creates a credit note.
type CreateCreditNoteRequest struct {
	Date           *time.Time      `json:"date,omitempty"`
	CounterpartyID string          `json:"counterpartyId" binding:"required,uuid"`
	WarehouseID    *string         `json:"warehouseId,omitempty"`
	Currency       string          `json:"currency,omitempty"`
	Comment        string          `json:"comment,omitempty"`
	InvoiceID      *string         `json:"invoiceId,omitempty"`
	GoodsReturn    bool            `json:"goodsReturn"`
	Reason         string          `json:"reason,omitempty"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	ShippingAmount decimal.Decimal `json:"shippingAmount"`
	Lines          []LineRequest   `json:"lines" binding:"omitempty,dive"`
}

// ToEntity converts the request to a domain credit note.
func (r *CreateCreditNoteRequest) ToEntity() (*creditnote.CreditNote, error) {
	cn := creditnote.New(r.CounterpartyID, r.Currency)
	if r.Date != nil {
		cn.Date = *r.Date
	}
	cn.WarehouseID = r.WarehouseID
	cn.Comment = r.Comment
	cn.InvoiceID = r.InvoiceID
	cn.GoodsReturn = r.GoodsReturn
	cn.Reason = r.Reason
	cn.DiscountAmount = r.DiscountAmount
	cn.ShippingAmount = r.ShippingAmount

	lines, err := ToLines(r.Lines)
	if err != nil {
		return nil, err
	}
	cn.SetLines(lines)
	return cn, nil
}

// UpdateCreditNoteRequest patches the credit note header.
type UpdateCreditNoteRequest struct {
	UpdateHeaderRequest
	InvoiceID   *string `json:"invoiceId,omitempty"`
	GoodsReturn *bool   `json:"goodsReturn,omitempty"`
	Reason      *string `json:"reason,omitempty"`
}

// ApplyTo applies the patch to an existing credit note.
func (r *UpdateCreditNoteRequest) ApplyTo(cn *creditnote.CreditNote) {
	r.UpdateHeaderRequest.ApplyTo(&cn.TradeDocument)
	if r.InvoiceID != nil {
		cn.InvoiceID = r.InvoiceID
	}
	if r.GoodsReturn != nil {
		cn.GoodsReturn = *r.GoodsReturn
	}
	if r.Reason != nil {
		cn.Reason = *r.Reason
	}
}

// CreditNoteResponse represents a credit note in API responses.
type CreditNoteResponse struct {
	DocumentResponse
	Status      string  `json:"status"`
	InvoiceID   *string `json:"invoiceId,omitempty"`
	GoodsReturn bool    `json:"goodsReturn"`
	Reason      string  `json:"reason,omitempty"`
}

// FromCreditNote creates a response from a domain credit note.
func FromCreditNote(cn *creditnote.CreditNote) *CreditNoteResponse {
	return &CreditNoteResponse{
		DocumentResponse: FromTradeDocument(&cn.TradeDocument),
		Status:           string(cn.Status),
		InvoiceID:        cn.InvoiceID,
		GoodsReturn:      cn.GoodsReturn,
		Reason:           cn.Reason,
	}
}
