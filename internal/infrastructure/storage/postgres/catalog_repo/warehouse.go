package catalog_repo

import (
	"tradewind/internal/domain/catalogs/warehouse"
	"tradewind/internal/infrastructure/storage/postgres"
)

const warehouseTable = "cat_warehouses"

// WarehouseRepo implements warehouse.Repository.
type WarehouseRepo struct {
	*BaseCatalogRepo[*warehouse.Warehouse]
}

var _ warehouse.Repository = (*WarehouseRepo)(nil)

// NewWarehouseRepo creates a new warehouse repository.
func NewWarehouseRepo() *WarehouseRepo {
	return &WarehouseRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			warehouseTable,
			postgres.ExtractDBColumns[warehouse.Warehouse](),
			func() *warehouse.Warehouse { return &warehouse.Warehouse{} },
		),
	}
}
