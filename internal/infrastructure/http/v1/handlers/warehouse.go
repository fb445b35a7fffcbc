package handlers

import (
	"tradewind/internal/domain/catalogs/warehouse"
	"tradewind/internal/infrastructure/http/v1/dto"
)

// WarehouseHTTPHandler is the configured generic handler type.
type WarehouseHTTPHandler = CatalogHandler[
	*warehouse.Warehouse,
	dto.CreateWarehouseRequest,
	dto.UpdateWarehouseRequest,
]

// NewWarehouseHandler creates a configured warehouse handler.
func NewWarehouseHandler(base *BaseHandler, service *warehouse.Service) *WarehouseHTTPHandler {
	config := CatalogHandlerConfig[
		*warehouse.Warehouse,
		dto.CreateWarehouseRequest,
		dto.UpdateWarehouseRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "warehouse",
		MapCreateDTO: func(req dto.CreateWarehouseRequest) *warehouse.Warehouse {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateWarehouseRequest, existing *warehouse.Warehouse) *warehouse.Warehouse {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(e *warehouse.Warehouse) any {
			return dto.FromWarehouse(e)
		},
	}

	return NewCatalogHandler(base, config)
}
