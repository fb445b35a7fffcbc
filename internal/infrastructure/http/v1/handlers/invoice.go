package handlers

import (
	"github.com/gin-gonic/gin"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/domain/documents/invoice"
	"tradewind/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler serves customer invoices: CRUD, posting, lifecycle
// transitions and payment recording.
type InvoiceHandler struct {
	*DocumentHandler[*invoice.Invoice, dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest]
	service *invoice.Service
}

// NewInvoiceHandler creates a configured invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *invoice.Service) *InvoiceHandler {
	config := DocumentHandlerConfig[*invoice.Invoice, dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest]{
		Service:    service.Service,
		EntityName: "invoice",
		MapCreateDTO: func(req dto.CreateInvoiceRequest) (*invoice.Invoice, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateInvoiceRequest, existing *invoice.Invoice) *invoice.Invoice {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(inv *invoice.Invoice) any {
			return dto.FromInvoice(inv)
		},
	}

	return &InvoiceHandler{
		DocumentHandler: NewDocumentHandler(base, config),
		service:         service,
	}
}

func (h *InvoiceHandler) docID(c *gin.Context) (id.ID, bool) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return id.Nil(), false
	}
	return docID, true
}

// Send handles POST /invoices/:id/send - draft to sent.
func (h *InvoiceHandler) Send(c *gin.Context) {
	docID, ok := h.docID(c)
	if !ok {
		return
	}

	inv, err := h.service.Send(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromInvoice(inv))
}

// Void handles POST /invoices/:id/void.
func (h *InvoiceHandler) Void(c *gin.Context) {
	docID, ok := h.docID(c)
	if !ok {
		return
	}

	inv, err := h.service.Void(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromInvoice(inv))
}

// RecordPayment handles POST /invoices/:id/payments.
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	docID, ok := h.docID(c)
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	inv, err := h.service.RecordPayment(c.Request.Context(), docID, req.ToPayment())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromInvoice(inv))
}

// RefreshStatus handles POST /invoices/:id/refresh-status - re-derives
// the payment status, picking up overdue transitions.
func (h *InvoiceHandler) RefreshStatus(c *gin.Context) {
	docID, ok := h.docID(c)
	if !ok {
		return
	}

	inv, err := h.service.RefreshStatus(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromInvoice(inv))
}
