package document_repo

import (
	"tradewind/internal/domain/documents/goodsreceipt"
	"tradewind/internal/infrastructure/storage/postgres"
)

const (
	goodsReceiptsTable     = "doc_goods_receipts"
	goodsReceiptLinesTable = "doc_goods_receipt_lines"
)

// GoodsReceiptRepo implements goodsreceipt.Repository.
type GoodsReceiptRepo struct {
	*BaseDocumentRepo[*goodsreceipt.GoodsReceipt]
}

var _ goodsreceipt.Repository = (*GoodsReceiptRepo)(nil)

// NewGoodsReceiptRepo creates a new goods receipt repository.
func NewGoodsReceiptRepo() *GoodsReceiptRepo {
	return &GoodsReceiptRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			goodsReceiptsTable,
			goodsReceiptLinesTable,
			postgres.ExtractDBColumns[goodsreceipt.GoodsReceipt](),
			func() *goodsreceipt.GoodsReceipt { return &goodsreceipt.GoodsReceipt{} },
		),
	}
}
