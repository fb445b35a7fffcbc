// Package register_repo provides PostgreSQL implementations for register repositories.
// In Database-per-Tenant architecture, TxManager is obtained from context.
package register_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"tradewind/internal/core/id"
	"tradewind/internal/domain/registers/stock"
	"tradewind/internal/infrastructure/storage/postgres"
)

const stockMovementsTable = "reg_stock_movements"

var movementColumns = []string{
	"id", "document_id", "document_type",
	"warehouse_id", "product_id", "quantity",
	"period", "created_at",
}

// StockRepo implements stock.Repository. Balances are computed by summing
// movements, there is no materialized balance table to drift out of sync.
type StockRepo struct {
	builder squirrel.StatementBuilderType
}

var _ stock.Repository = (*StockRepo)(nil)

// NewStockRepo creates a new stock register repository.
func NewStockRepo() *StockRepo {
	return &StockRepo{
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *StockRepo) getTxManager(ctx context.Context) *postgres.TxManager {
	return postgres.MustGetTxManager(ctx)
}

// ReplaceMovements atomically replaces all movements recorded by a
// document. Posting writes the new set, unposting passes an empty one.
func (r *StockRepo) ReplaceMovements(ctx context.Context, documentID id.ID, movements []stock.Movement) error {
	txm := r.getTxManager(ctx)
	querier := txm.GetQuerier(ctx)

	deleteSQL := "DELETE FROM " + stockMovementsTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, documentID); err != nil {
		return fmt.Errorf("delete movements: %w", err)
	}

	if len(movements) == 0 {
		return nil
	}

	// Fast path: COPY when inside a transaction
	if tx := txm.GetTx(ctx); tx != nil {
		rows := make([][]any, 0, len(movements))
		for _, m := range movements {
			rows = append(rows, []any{
				m.ID, m.DocumentID, m.DocumentType,
				m.WarehouseID, m.ProductID, m.Quantity,
				m.Period, m.CreatedAt,
			})
		}
		inserter := postgres.NewBatchInserter(txm)
		if _, err := inserter.CopyFromSlice(ctx, stockMovementsTable, movementColumns, rows); err != nil {
			return fmt.Errorf("copy movements: %w", err)
		}
		return nil
	}

	q := r.builder.Insert(stockMovementsTable).Columns(movementColumns...)
	for _, m := range movements {
		q = q.Values(
			m.ID, m.DocumentID, m.DocumentType,
			m.WarehouseID, m.ProductID, m.Quantity,
			m.Period, m.CreatedAt,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert movements: %w", err)
	}

	return nil
}

// GetBalance returns the total quantity of a product across all warehouses
// as of the given time.
func (r *StockRepo) GetBalance(ctx context.Context, productID id.ID, asOf time.Time) (decimal.Decimal, error) {
	q := r.builder.
		Select("COALESCE(SUM(quantity), 0)").
		From(stockMovementsTable).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.LtOrEq{"period": asOf})

	return r.scanQuantity(ctx, q)
}

// GetBalanceByWarehouse returns the quantity of a product in one warehouse
// as of the given time.
func (r *StockRepo) GetBalanceByWarehouse(ctx context.Context, productID, warehouseID id.ID, asOf time.Time) (decimal.Decimal, error) {
	q := r.builder.
		Select("COALESCE(SUM(quantity), 0)").
		From(stockMovementsTable).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Eq{"warehouse_id": warehouseID}).
		Where(squirrel.LtOrEq{"period": asOf})

	return r.scanQuantity(ctx, q)
}

func (r *StockRepo) scanQuantity(ctx context.Context, q squirrel.SelectBuilder) (decimal.Decimal, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("build query: %w", err)
	}

	var qty decimal.Decimal
	err = r.getTxManager(ctx).GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&qty)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("scan balance: %w", err)
	}

	return qty, nil
}

// ListBalances returns per-warehouse positions for a product, zero
// positions excluded.
func (r *StockRepo) ListBalances(ctx context.Context, productID id.ID, asOf time.Time) ([]stock.Balance, error) {
	q := r.builder.
		Select("product_id", "warehouse_id", "SUM(quantity) AS quantity").
		From(stockMovementsTable).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.LtOrEq{"period": asOf}).
		GroupBy("product_id", "warehouse_id").
		Having("SUM(quantity) <> 0").
		OrderBy("warehouse_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var balances []stock.Balance
	querier := r.getTxManager(ctx).GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &balances, sql, args...); err != nil {
		return nil, fmt.Errorf("select balances: %w", err)
	}

	return balances, nil
}

// ListMovementsByDocument returns the rows a document recorded.
func (r *StockRepo) ListMovementsByDocument(ctx context.Context, documentID id.ID) ([]stock.Movement, error) {
	q := r.builder.
		Select(movementColumns...).
		From(stockMovementsTable).
		Where(squirrel.Eq{"document_id": documentID}).
		OrderBy("created_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var movements []stock.Movement
	querier := r.getTxManager(ctx).GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &movements, sql, args...); err != nil {
		return nil, fmt.Errorf("select movements: %w", err)
	}

	return movements, nil
}
