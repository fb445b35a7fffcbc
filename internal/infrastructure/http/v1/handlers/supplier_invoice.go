package handlers

import (
	"github.com/gin-gonic/gin"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/domain/documents/supplierinvoice"
	"tradewind/internal/infrastructure/http/v1/dto"
)

// SupplierInvoiceHandler serves supplier invoices: CRUD, lifecycle
// transitions and payment recording.
type SupplierInvoiceHandler struct {
	*DocumentHandler[*supplierinvoice.SupplierInvoice, dto.CreateSupplierInvoiceRequest, dto.UpdateSupplierInvoiceRequest]
	service *supplierinvoice.Service
}

// NewSupplierInvoiceHandler creates a configured supplier invoice handler.
func NewSupplierInvoiceHandler(base *BaseHandler, service *supplierinvoice.Service) *SupplierInvoiceHandler {
	config := DocumentHandlerConfig[*supplierinvoice.SupplierInvoice, dto.CreateSupplierInvoiceRequest, dto.UpdateSupplierInvoiceRequest]{
		Service:    service.Service,
		EntityName: "supplier_invoice",
		MapCreateDTO: func(req dto.CreateSupplierInvoiceRequest) (*supplierinvoice.SupplierInvoice, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateSupplierInvoiceRequest, existing *supplierinvoice.SupplierInvoice) *supplierinvoice.SupplierInvoice {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(si *supplierinvoice.SupplierInvoice) any {
			return dto.FromSupplierInvoice(si)
		},
	}

	return &SupplierInvoiceHandler{
		DocumentHandler: NewDocumentHandler(base, config),
		service:         service,
	}
}

func (h *SupplierInvoiceHandler) transition(c *gin.Context, fn func(ctx *gin.Context, docID id.ID) (*supplierinvoice.SupplierInvoice, error)) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	si, err := fn(c, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSupplierInvoice(si))
}

// Accept handles POST /supplier-invoices/:id/accept.
func (h *SupplierInvoiceHandler) Accept(c *gin.Context) {
	h.transition(c, func(c *gin.Context, docID id.ID) (*supplierinvoice.SupplierInvoice, error) {
		return h.service.Accept(c.Request.Context(), docID)
	})
}

// Dispute handles POST /supplier-invoices/:id/dispute.
func (h *SupplierInvoiceHandler) Dispute(c *gin.Context) {
	h.transition(c, func(c *gin.Context, docID id.ID) (*supplierinvoice.SupplierInvoice, error) {
		return h.service.Dispute(c.Request.Context(), docID)
	})
}

// RecordPayment handles POST /supplier-invoices/:id/payments.
func (h *SupplierInvoiceHandler) RecordPayment(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.PaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	si, err := h.service.RecordPayment(c.Request.Context(), docID, req.ToSupplierPayment())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSupplierInvoice(si))
}
