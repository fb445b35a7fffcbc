package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"tradewind/internal/domain/documents/supplierinvoice"
)

// CreateSupplierInvoiceRequest creates a supplier invoice.
type CreateSupplierInvoiceRequest struct {
	Date              *time.Time      `json:"date,omitempty"`
	CounterpartyID    string          `json:"counterpartyId" binding:"required,uuid"`
	WarehouseID       *string         `json:"warehouseId,omitempty"`
	Currency          string          `json:"currency,omitempty"`
	Comment           string          `json:"comment,omitempty"`
	SupplierReference string          `json:"supplierReference,omitempty"`
	DueDate           *time.Time      `json:"dueDate,omitempty"`
	PurchaseOrderID   *string         `json:"purchaseOrderId,omitempty"`
	DiscountAmount    decimal.Decimal `json:"discountAmount"`
	ShippingAmount    decimal.Decimal `json:"shippingAmount"`
	Lines             []LineRequest   `json:"lines" binding:"omitempty,dive"`
}

// ToEntity converts the request to a domain supplier invoice.
func (r *CreateSupplierInvoiceRequest) ToEntity() (*supplierinvoice.SupplierInvoice, error) {
	si := supplierinvoice.New(r.CounterpartyID, r.Currency)
	if r.Date != nil {
		si.Date = *r.Date
	}
	si.WarehouseID = r.WarehouseID
	si.Comment = r.Comment
	si.SupplierReference = r.SupplierReference
	if r.DueDate != nil {
		si.DueDate = *r.DueDate
	}
	si.PurchaseOrderID = r.PurchaseOrderID
	si.DiscountAmount = r.DiscountAmount
	si.ShippingAmount = r.ShippingAmount

	lines, err := ToLines(r.Lines)
	if err != nil {
		return nil, err
	}
	si.SetLines(lines)
	return si, nil
}

// UpdateSupplierInvoiceRequest patches the supplier invoice header.
type UpdateSupplierInvoiceRequest struct {
	UpdateHeaderRequest
	SupplierReference *string    `json:"supplierReference,omitempty"`
	DueDate           *time.Time `json:"dueDate,omitempty"`
	PurchaseOrderID   *string    `json:"purchaseOrderId,omitempty"`
}

// ApplyTo applies the patch to an existing supplier invoice.
func (r *UpdateSupplierInvoiceRequest) ApplyTo(si *supplierinvoice.SupplierInvoice) {
	r.UpdateHeaderRequest.ApplyTo(&si.TradeDocument)
	if r.SupplierReference != nil {
		si.SupplierReference = *r.SupplierReference
	}
	if r.DueDate != nil {
		si.DueDate = *r.DueDate
	}
	if r.PurchaseOrderID != nil {
		si.PurchaseOrderID = r.PurchaseOrderID
	}
}

// SupplierInvoiceResponse represents a supplier invoice in API responses.
type SupplierInvoiceResponse struct {
	DocumentResponse
	Status            string            `json:"status"`
	SupplierReference string            `json:"supplierReference,omitempty"`
	DueDate           *time.Time        `json:"dueDate,omitempty"`
	AmountPaid        decimal.Decimal   `json:"amountPaid"`
	PaymentStatus     string            `json:"paymentStatus"`
	Payments          []PaymentResponse `json:"payments,omitempty"`
	PurchaseOrderID   *string           `json:"purchaseOrderId,omitempty"`
}

// FromSupplierInvoice creates a response from a domain supplier invoice.
func FromSupplierInvoice(si *supplierinvoice.SupplierInvoice) *SupplierInvoiceResponse {
	resp := &SupplierInvoiceResponse{
		DocumentResponse:  FromTradeDocument(&si.TradeDocument),
		Status:            string(si.Status),
		SupplierReference: si.SupplierReference,
		AmountPaid:        si.AmountPaid,
		PaymentStatus:     string(si.PaymentStatus),
		PurchaseOrderID:   si.PurchaseOrderID,
	}
	if !si.DueDate.IsZero() {
		due := si.DueDate
		resp.DueDate = &due
	}
	if len(si.Payments) > 0 {
		resp.Payments = make([]PaymentResponse, len(si.Payments))
		for i, p := range si.Payments {
			resp.Payments[i] = PaymentResponse{
				ID:        p.ID.String(),
				Date:      p.Date,
				Amount:    p.Amount,
				Method:    p.Method,
				Reference: p.Reference,
			}
		}
	}
	return resp
}

// ToSupplierPayment converts a payment request to a domain payment.
func (r *PaymentRequest) ToSupplierPayment() supplierinvoice.Payment {
	date := r.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	return supplierinvoice.Payment{
		Date:      date,
		Amount:    r.Amount,
		Method:    r.Method,
		Reference: r.Reference,
	}
}
