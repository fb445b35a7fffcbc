package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"tradewind/internal/domain/documents/salesorder"
)

// CreateSalesOrderRequest creates a sales order.
type CreateSalesOrderRequest struct {
	Date           *time.Time      `json:"date,omitempty"`
	CounterpartyID string          `json:"counterpartyId" binding:"required,uuid"`
	WarehouseID    *string         `json:"warehouseId,omitempty"`
	Currency       string          `json:"currency,omitempty"`
	Comment        string          `json:"comment,omitempty"`
	QuotationID    *string         `json:"quotationId,omitempty"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	ShippingAmount decimal.Decimal `json:"shippingAmount"`
	Lines          []LineRequest   `json:"lines" binding:"omitempty,dive"`
}

// ToEntity converts the request to a domain sales order.
func (r *CreateSalesOrderRequest) ToEntity() (*salesorder.SalesOrder, error) {
	so := salesorder.New(r.CounterpartyID, r.Currency)
	if r.Date != nil {
		so.Date = *r.Date
	}
	so.WarehouseID = r.WarehouseID
	so.Comment = r.Comment
	so.QuotationID = r.QuotationID
	so.DiscountAmount = r.DiscountAmount
	so.ShippingAmount = r.ShippingAmount

	lines, err := ToLines(r.Lines)
	if err != nil {
		return nil, err
	}
	so.SetLines(lines)
	return so, nil
}

// UpdateSalesOrderRequest patches the sales order header.
type UpdateSalesOrderRequest struct {
	UpdateHeaderRequest
	QuotationID *string `json:"quotationId,omitempty"`
}

// ApplyTo applies the patch to an existing sales order.
func (r *UpdateSalesOrderRequest) ApplyTo(so *salesorder.SalesOrder) {
	r.UpdateHeaderRequest.ApplyTo(&so.TradeDocument)
	if r.QuotationID != nil {
		so.QuotationID = r.QuotationID
	}
}

// SalesOrderResponse represents a sales order in API responses.
type SalesOrderResponse struct {
	DocumentResponse
	Status      string  `json:"status"`
	QuotationID *string `json:"quotationId,omitempty"`
}

// FromSalesOrder creates a response from a domain sales order.
func FromSalesOrder(so *salesorder.SalesOrder) *SalesOrderResponse {
	return &SalesOrderResponse{
		DocumentResponse: FromTradeDocument(&so.TradeDocument),
		Status:           string(so.Status),
		QuotationID:      so.QuotationID,
	}
}
