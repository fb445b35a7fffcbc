package handlers

import (
	"github.com/gin-gonic/gin"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/domain/documents/quotation"
	"tradewind/internal/infrastructure/http/v1/dto"
)

// QuotationHandler serves quotations: CRUD plus lifecycle transitions.
type QuotationHandler struct {
	*DocumentHandler[*quotation.Quotation, dto.CreateQuotationRequest, dto.UpdateQuotationRequest]
	service *quotation.Service
}

// NewQuotationHandler creates a configured quotation handler.
func NewQuotationHandler(base *BaseHandler, service *quotation.Service) *QuotationHandler {
	config := DocumentHandlerConfig[*quotation.Quotation, dto.CreateQuotationRequest, dto.UpdateQuotationRequest]{
		Service:    service.Service,
		EntityName: "quotation",
		MapCreateDTO: func(req dto.CreateQuotationRequest) (*quotation.Quotation, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateQuotationRequest, existing *quotation.Quotation) *quotation.Quotation {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(q *quotation.Quotation) any {
			return dto.FromQuotation(q)
		},
	}

	return &QuotationHandler{
		DocumentHandler: NewDocumentHandler(base, config),
		service:         service,
	}
}

func (h *QuotationHandler) transition(c *gin.Context, fn func(ctx *gin.Context, docID id.ID) (*quotation.Quotation, error)) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	q, err := fn(c, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromQuotation(q))
}

// Send handles POST /quotations/:id/send.
func (h *QuotationHandler) Send(c *gin.Context) {
	h.transition(c, func(c *gin.Context, docID id.ID) (*quotation.Quotation, error) {
		return h.service.Send(c.Request.Context(), docID)
	})
}

// Accept handles POST /quotations/:id/accept.
func (h *QuotationHandler) Accept(c *gin.Context) {
	h.transition(c, func(c *gin.Context, docID id.ID) (*quotation.Quotation, error) {
		return h.service.Accept(c.Request.Context(), docID)
	})
}

// Reject handles POST /quotations/:id/reject.
func (h *QuotationHandler) Reject(c *gin.Context) {
	h.transition(c, func(c *gin.Context, docID id.ID) (*quotation.Quotation, error) {
		return h.service.Reject(c.Request.Context(), docID)
	})
}
