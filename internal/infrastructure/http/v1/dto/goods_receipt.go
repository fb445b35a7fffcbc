package dto

import (
	"time"

	"tradewind/internal/domain/documents/goodsreceipt"
)

// CreateGoodsReceiptRequest creates a goods receipt.
type CreateGoodsReceiptRequest struct {
	Date            *time.Time    `json:"date,omitempty"`
	CounterpartyID  string        `json:"counterpartyId" binding:"required,uuid"`
	WarehouseID     string        `json:"warehouseId" binding:"required,uuid"`
	Currency        string        `json:"currency,omitempty"`
	Comment         string        `json:"comment,omitempty"`
	PurchaseOrderID *string       `json:"purchaseOrderId,omitempty"`
	Lines           []LineRequest `json:"lines" binding:"omitempty,dive"`
}

// ToEntity converts the request to a domain goods receipt.
func (r *CreateGoodsReceiptRequest) ToEntity() (*goodsreceipt.GoodsReceipt, error) {
	gr := goodsreceipt.New(r.CounterpartyID, r.WarehouseID, r.Currency)
	if r.Date != nil {
		gr.Date = *r.Date
	}
	gr.Comment = r.Comment
	gr.PurchaseOrderID = r.PurchaseOrderID

	lines, err := ToLines(r.Lines)
	if err != nil {
		return nil, err
	}
	gr.SetLines(lines)
	return gr, nil
}

// UpdateGoodsReceiptRequest patches the goods receipt header.
type UpdateGoodsReceiptRequest struct {
	UpdateHeaderRequest
	PurchaseOrderID *string `json:"purchaseOrderId,omitempty"`
}

// ApplyTo applies the patch to an existing goods receipt.
func (r *UpdateGoodsReceiptRequest) ApplyTo(gr *goodsreceipt.GoodsReceipt) {
	r.UpdateHeaderRequest.ApplyTo(&gr.TradeDocument)
	if r.PurchaseOrderID != nil {
		gr.PurchaseOrderID = r.PurchaseOrderID
	}
}

// GoodsReceiptResponse represents a goods receipt in API responses.
type GoodsReceiptResponse struct {
	DocumentResponse
	PurchaseOrderID *string `json:"purchaseOrderId,omitempty"`
}

// FromGoodsReceipt creates a response from a domain goods receipt.
func FromGoodsReceipt(gr *goodsreceipt.GoodsReceipt) *GoodsReceiptResponse {
	return &GoodsReceiptResponse{
		DocumentResponse: FromTradeDocument(&gr.TradeDocument),
		PurchaseOrderID:  gr.PurchaseOrderID,
	}
}
