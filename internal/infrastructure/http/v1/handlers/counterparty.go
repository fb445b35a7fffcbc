package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradewind/internal/core/apperror"
	"tradewind/internal/domain/catalogs/counterparty"
	"tradewind/internal/infrastructure/http/v1/dto"
)

// CounterpartyHandler serves the counterparty catalog.
type CounterpartyHandler struct {
	*CatalogHandler[*counterparty.Counterparty, dto.CreateCounterpartyRequest, dto.UpdateCounterpartyRequest]
	service *counterparty.Service
}

// NewCounterpartyHandler creates a configured counterparty handler.
func NewCounterpartyHandler(base *BaseHandler, service *counterparty.Service) *CounterpartyHandler {
	config := CatalogHandlerConfig[*counterparty.Counterparty, dto.CreateCounterpartyRequest, dto.UpdateCounterpartyRequest]{
		Service:    service.CatalogService,
		EntityName: "counterparty",
		MapCreateDTO: func(req dto.CreateCounterpartyRequest) *counterparty.Counterparty {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateCounterpartyRequest, existing *counterparty.Counterparty) *counterparty.Counterparty {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(e *counterparty.Counterparty) any {
			return dto.FromCounterparty(e)
		},
	}

	return &CounterpartyHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// FindByTaxID handles GET /counterparties/by-tax-id/:taxId.
func (h *CounterpartyHandler) FindByTaxID(c *gin.Context) {
	ctx := c.Request.Context()

	taxID := c.Param("taxId")
	if taxID == "" {
		h.Error(c, apperror.NewValidation("taxId is required"))
		return
	}

	cp, err := h.service.FindByTaxID(ctx, taxID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCounterparty(cp))
}
