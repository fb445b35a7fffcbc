package handlers

import (
	"github.com/gin-gonic/gin"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/domain/documents/salesorder"
	"tradewind/internal/infrastructure/http/v1/dto"
)

// SalesOrderHandler serves sales orders: CRUD plus lifecycle transitions.
type SalesOrderHandler struct {
	*DocumentHandler[*salesorder.SalesOrder, dto.CreateSalesOrderRequest, dto.UpdateSalesOrderRequest]
	service *salesorder.Service
}

// NewSalesOrderHandler creates a configured sales order handler.
func NewSalesOrderHandler(base *BaseHandler, service *salesorder.Service) *SalesOrderHandler {
	config := DocumentHandlerConfig[*salesorder.SalesOrder, dto.CreateSalesOrderRequest, dto.UpdateSalesOrderRequest]{
		Service:    service.Service,
		EntityName: "sales_order",
		MapCreateDTO: func(req dto.CreateSalesOrderRequest) (*salesorder.SalesOrder, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateSalesOrderRequest, existing *salesorder.SalesOrder) *salesorder.SalesOrder {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(so *salesorder.SalesOrder) any {
			return dto.FromSalesOrder(so)
		},
	}

	return &SalesOrderHandler{
		DocumentHandler: NewDocumentHandler(base, config),
		service:         service,
	}
}

func (h *SalesOrderHandler) transition(c *gin.Context, fn func(ctx *gin.Context, docID id.ID) (*salesorder.SalesOrder, error)) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	so, err := fn(c, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSalesOrder(so))
}

// Confirm handles POST /sales-orders/:id/confirm.
func (h *SalesOrderHandler) Confirm(c *gin.Context) {
	h.transition(c, func(c *gin.Context, docID id.ID) (*salesorder.SalesOrder, error) {
		return h.service.Confirm(c.Request.Context(), docID)
	})
}

// Fulfill handles POST /sales-orders/:id/fulfill.
func (h *SalesOrderHandler) Fulfill(c *gin.Context) {
	h.transition(c, func(c *gin.Context, docID id.ID) (*salesorder.SalesOrder, error) {
		return h.service.Fulfill(c.Request.Context(), docID)
	})
}

// Cancel handles POST /sales-orders/:id/cancel.
func (h *SalesOrderHandler) Cancel(c *gin.Context) {
	h.transition(c, func(c *gin.Context, docID id.ID) (*salesorder.SalesOrder, error) {
		return h.service.Cancel(c.Request.Context(), docID)
	})
}
