package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"tradewind/internal/domain/documents/invoice"
)

// --- Request DTOs ---

// CreateInvoiceRequest creates a customer invoice.
type CreateInvoiceRequest struct {
	Date           *time.Time      `json:"date,omitempty"`
	CounterpartyID string          `json:"counterpartyId" binding:"required,uuid"`
	WarehouseID    *string         `json:"warehouseId,omitempty"`
	Currency       string          `json:"currency,omitempty"`
	Comment        string          `json:"comment,omitempty"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	SalesOrderID   *string         `json:"salesOrderId,omitempty"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	ShippingAmount decimal.Decimal `json:"shippingAmount"`
	Lines          []LineRequest   `json:"lines" binding:"omitempty,dive"`
}

// ToEntity converts the request to a domain invoice.
func (r *CreateInvoiceRequest) ToEntity() (*invoice.Invoice, error) {
	inv := invoice.New(r.CounterpartyID, r.Currency)
	if r.Date != nil {
		inv.Date = *r.Date
	}
	inv.WarehouseID = r.WarehouseID
	inv.Comment = r.Comment
	if r.DueDate != nil {
		inv.DueDate = *r.DueDate
	}
	inv.SalesOrderID = r.SalesOrderID
	inv.DiscountAmount = r.DiscountAmount
	inv.ShippingAmount = r.ShippingAmount

	lines, err := ToLines(r.Lines)
	if err != nil {
		return nil, err
	}
	inv.SetLines(lines)
	return inv, nil
}

// UpdateInvoiceRequest patches the invoice header.
type UpdateInvoiceRequest struct {
	UpdateHeaderRequest
	DueDate      *time.Time `json:"dueDate,omitempty"`
	SalesOrderID *string    `json:"salesOrderId,omitempty"`
}

// ApplyTo applies the patch to an existing invoice.
func (r *UpdateInvoiceRequest) ApplyTo(inv *invoice.Invoice) {
	r.UpdateHeaderRequest.ApplyTo(&inv.TradeDocument)
	if r.DueDate != nil {
		inv.DueDate = *r.DueDate
	}
	if r.SalesOrderID != nil {
		inv.SalesOrderID = r.SalesOrderID
	}
}

// --- Response DTOs ---

// InvoiceResponse represents an invoice in API responses.
type InvoiceResponse struct {
	DocumentResponse
	Status        string            `json:"status"`
	DueDate       *time.Time        `json:"dueDate,omitempty"`
	AmountPaid    decimal.Decimal   `json:"amountPaid"`
	PaymentStatus string            `json:"paymentStatus"`
	Payments      []PaymentResponse `json:"payments,omitempty"`
	SalesOrderID  *string           `json:"salesOrderId,omitempty"`
}

// FromInvoice creates a response from a domain invoice.
func FromInvoice(inv *invoice.Invoice) *InvoiceResponse {
	resp := &InvoiceResponse{
		DocumentResponse: FromTradeDocument(&inv.TradeDocument),
		Status:           string(inv.Status),
		AmountPaid:       inv.AmountPaid,
		PaymentStatus:    string(inv.PaymentStatus),
		SalesOrderID:     inv.SalesOrderID,
	}
	if !inv.DueDate.IsZero() {
		due := inv.DueDate
		resp.DueDate = &due
	}
	if len(inv.Payments) > 0 {
		resp.Payments = make([]PaymentResponse, len(inv.Payments))
		for i, p := range inv.Payments {
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

// ToPayment converts a payment request to a domain payment.
func (r *PaymentRequest) ToPayment() invoice.Payment {
	date := r.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	return invoice.Payment{
		Date:      date,
		Amount:    r.Amount,
		Method:    r.Method,
		Reference: r.Reference,
	}
}
