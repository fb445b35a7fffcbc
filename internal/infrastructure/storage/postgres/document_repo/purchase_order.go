package document_repo

import (
	"tradewind/internal/domain/documents/purchaseorder"
	"tradewind/internal/infrastructure/storage/postgres"
)

const (
	purchaseOrdersTable     = "doc_purchase_orders"
	purchaseOrderLinesTable = "doc_purchase_order_lines"
)

// PurchaseOrderRepo implements purchaseorder.Repository.
type PurchaseOrderRepo struct {
	*BaseDocumentRepo[*purchaseorder.PurchaseOrder]
}

var _ purchaseorder.Repository = (*PurchaseOrderRepo)(nil)

// NewPurchaseOrderRepo creates a new purchase order repository.
func NewPurchaseOrderRepo() *PurchaseOrderRepo {
	return &PurchaseOrderRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			purchaseOrdersTable,
			purchaseOrderLinesTable,
			postgres.ExtractDBColumns[purchaseorder.PurchaseOrder](),
			func() *purchaseorder.PurchaseOrder { return &purchaseorder.PurchaseOrder{} },
		),
	}
}
