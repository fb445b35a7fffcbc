package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/domain/catalogs/unit"
	"tradewind/internal/infrastructure/http/v1/dto"
)

// UnitHandler serves the unit catalog plus conversion endpoints.
type UnitHandler struct {
	*CatalogHandler[*unit.Unit, dto.CreateUnitRequest, dto.UpdateUnitRequest]
	service *unit.Service
}

// NewUnitHandler creates a configured unit handler.
func NewUnitHandler(base *BaseHandler, service *unit.Service) *UnitHandler {
	config := CatalogHandlerConfig[*unit.Unit, dto.CreateUnitRequest, dto.UpdateUnitRequest]{
		Service:    service.CatalogService,
		EntityName: "unit",
		MapCreateDTO: func(req dto.CreateUnitRequest) *unit.Unit {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateUnitRequest, existing *unit.Unit) *unit.Unit {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(e *unit.Unit) any {
			return dto.FromUnit(e)
		},
	}

	return &UnitHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// Convert handles POST /units/convert - quantity conversion between
// compatible units.
func (h *UnitHandler) Convert(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ConvertRequest
	if !h.BindJSON(c, &req) {
		return
	}

	fromID, err := id.Parse(req.FromUnitID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid fromUnitId format"))
		return
	}
	toID, err := id.Parse(req.ToUnitID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid toUnitId format"))
		return
	}

	from, err := h.service.GetByID(ctx, fromID)
	if err != nil {
		h.Error(c, err)
		return
	}
	to, err := h.service.GetByID(ctx, toID)
	if err != nil {
		h.Error(c, err)
		return
	}

	result, err := from.ConvertTo(req.Quantity, to)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		FromUnitID: req.FromUnitID,
		ToUnitID:   req.ToUnitID,
		Quantity:   req.Quantity,
		Result:     result,
	})
}

// CompatibleUnits handles GET /units/:id/compatible - the base unit and
// everything derived from it.
func (h *UnitHandler) CompatibleUnits(c *gin.Context) {
	ctx := c.Request.Context()

	unitID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	units, err := h.service.CompatibleUnits(ctx, unitID)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(units))
	for i, u := range units {
		items[i] = dto.FromUnit(u)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
