package dto

import (
	"time"

	"tradewind/internal/domain/documents/deliverynote"
)

// CreateDeliveryNoteRequest creates a delivery note.
type CreateDeliveryNoteRequest struct {
	Date           *time.Time    `json:"date,omitempty"`
	CounterpartyID string        `json:"counterpartyId" binding:"required,uuid"`
	WarehouseID    string        `json:"warehouseId" binding:"required,uuid"`
	Comment        string        `json:"comment,omitempty"`
	SalesOrderID   *string       `json:"salesOrderId,omitempty"`
	Lines          []LineRequest `json:"lines" binding:"omitempty,dive"`
}

// ToEntity converts the request to a domain delivery note.
func (r *CreateDeliveryNoteRequest) ToEntity() (*deliverynote.DeliveryNote, error) {
	dn := deliverynote.New(r.CounterpartyID, r.WarehouseID)
	if r.Date != nil {
		dn.Date = *r.Date
	}
	dn.Comment = r.Comment
	dn.SalesOrderID = r.SalesOrderID

	lines, err := ToLines(r.Lines)
	if err != nil {
		return nil, err
	}
	dn.SetLines(lines)
	return dn, nil
}

// UpdateDeliveryNoteRequest patches the delivery note header.
type UpdateDeliveryNoteRequest struct {
	UpdateHeaderRequest
	SalesOrderID *string `json:"salesOrderId,omitempty"`
}

// ApplyTo applies the patch to an existing delivery note.
func (r *UpdateDeliveryNoteRequest) ApplyTo(dn *deliverynote.DeliveryNote) {
	r.UpdateHeaderRequest.ApplyTo(&dn.TradeDocument)
	if r.SalesOrderID != nil {
		dn.SalesOrderID = r.SalesOrderID
	}
}

// DeliveryNoteResponse represents a delivery note in API responses.
type DeliveryNoteResponse struct {
	DocumentResponse
	SalesOrderID *string `json:"salesOrderId,omitempty"`
}

// FromDeliveryNote creates a response from a domain delivery note.
func FromDeliveryNote(dn *deliverynote.DeliveryNote) *DeliveryNoteResponse {
	return &DeliveryNoteResponse{
		DocumentResponse: FromTradeDocument(&dn.TradeDocument),
		SalesOrderID:     dn.SalesOrderID,
	}
}
