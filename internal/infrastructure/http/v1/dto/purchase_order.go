package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"tradewind/internal/domain/documents/purchaseorder"
)

// CreatePurchaseOrderRequest creates a purchase order.
type CreatePurchaseOrderRequest struct {
	Date           *time.Time      `json:"date,omitempty"`
	CounterpartyID string          `json:"counterpartyId" binding:"required,uuid"`
	WarehouseID    *string         `json:"warehouseId,omitempty"`
	Currency       string          `json:"currency,omitempty"`
	Comment        string          `json:"comment,omitempty"`
	ExpectedAt     *time.Time      `json:"expectedAt,omitempty"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	ShippingAmount decimal.Decimal `json:"shippingAmount"`
	Lines          []LineRequest   `json:"lines" binding:"omitempty,dive"`
}

// ToEntity converts the request to a domain purchase order.
func (r *CreatePurchaseOrderRequest) ToEntity() (*purchaseorder.PurchaseOrder, error) {
	po := purchaseorder.New(r.CounterpartyID, r.Currency)
	if r.Date != nil {
		po.Date = *r.Date
	}
	po.WarehouseID = r.WarehouseID
	po.Comment = r.Comment
	po.ExpectedAt = r.ExpectedAt
	po.DiscountAmount = r.DiscountAmount
	po.ShippingAmount = r.ShippingAmount

	lines, err := ToLines(r.Lines)
	if err != nil {
		return nil, err
	}
	po.SetLines(lines)
	return po, nil
}

// UpdatePurchaseOrderRequest patches the purchase order header.
type UpdatePurchaseOrderRequest struct {
	UpdateHeaderRequest
	ExpectedAt *time.Time `json:"expectedAt,omitempty"`
}

// ApplyTo applies the patch to an existing purchase order.
func (r *UpdatePurchaseOrderRequest) ApplyTo(po *purchaseorder.PurchaseOrder) {
	r.UpdateHeaderRequest.ApplyTo(&po.TradeDocument)
	if r.ExpectedAt != nil {
		po.ExpectedAt = r.ExpectedAt
	}
}

// PurchaseOrderResponse represents a purchase order in API responses.
type PurchaseOrderResponse struct {
	DocumentResponse
	Status     string     `json:"status"`
	ExpectedAt *time.Time `json:"expectedAt,omitempty"`
}

// FromPurchaseOrder creates a response from a domain purchase order.
func FromPurchaseOrder(po *purchaseorder.PurchaseOrder) *PurchaseOrderResponse {
	return &PurchaseOrderResponse{
		DocumentResponse: FromTradeDocument(&po.TradeDocument),
		Status:           string(po.Status),
		ExpectedAt:       po.ExpectedAt,
	}
}
