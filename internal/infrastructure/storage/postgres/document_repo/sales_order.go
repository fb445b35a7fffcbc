package document_repo

import (
	"tradewind/internal/domain/documents/salesorder"
	"tradewind/internal/infrastructure/storage/postgres"
)

const (
	salesOrdersTable     = "doc_sales_orders"
	salesOrderLinesTable = "doc_sales_order_lines"
)

// SalesOrderRepo implements salesorder.Repository.
type SalesOrderRepo struct {
	*BaseDocumentRepo[*salesorder.SalesOrder]
}

var _ salesorder.Repository = (*SalesOrderRepo)(nil)

// NewSalesOrderRepo creates a new sales order repository.
func NewSalesOrderRepo() *SalesOrderRepo {
	return &SalesOrderRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			salesOrdersTable,
			salesOrderLinesTable,
			postgres.ExtractDBColumns[salesorder.SalesOrder](),
			func() *salesorder.SalesOrder { return &salesorder.SalesOrder{} },
		),
	}
}
