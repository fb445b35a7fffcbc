package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradewind/internal/core/apperror"
	"tradewind/internal/core/id"
	"tradewind/internal/core/tenant"
	"tradewind/internal/domain"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	units map[id.ID]*Unit
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{units: make(map[id.ID]*Unit)}
}

func (r *fakeRepo) Create(ctx context.Context, u *Unit) error {
	r.units[u.ID] = u
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, unitID id.ID) (*Unit, error) {
	u, ok := r.units[unitID]
	if !ok {
		return nil, apperror.NewNotFound("unit", unitID.String())
	}
	return u, nil
}

func (r *fakeRepo) GetByCode(ctx context.Context, code string) (*Unit, error) {
	for _, u := range r.units {
		if u.Code == code {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("unit", code)
}

func (r *fakeRepo) Update(ctx context.Context, u *Unit) error {
	r.units[u.ID] = u
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, unitID id.ID) error {
	return r.SetDeletionMark(ctx, unitID, true)
}

func (r *fakeRepo) SetDeletionMark(ctx context.Context, unitID id.ID, marked bool) error {
	u, ok := r.units[unitID]
	if !ok {
		return apperror.NewNotFound("unit", unitID.String())
	}
	u.DeletionMark = marked
	return nil
}

func (r *fakeRepo) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*Unit], error) {
	var items []*Unit
	for _, u := range r.units {
		items = append(items, u)
	}
	return domain.ListResult[*Unit]{Items: items, TotalCount: int64(len(items))}, nil
}

func (r *fakeRepo) Exists(ctx context.Context, unitID id.ID) (bool, error) {
	_, ok := r.units[unitID]
	return ok, nil
}

func (r *fakeRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, err := r.GetByCode(ctx, code)
	return err == nil, nil
}

func (r *fakeRepo) FindBySymbol(ctx context.Context, symbol string) (*Unit, error) {
	for _, u := range r.units {
		if u.Symbol == symbol {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("unit", symbol)
}

func (r *fakeRepo) ListByBaseUnit(ctx context.Context, baseUnitID id.ID) ([]*Unit, error) {
	var out []*Unit
	for _, u := range r.units {
		if u.BaseUnitID != nil && *u.BaseUnitID == baseUnitID.String() {
			out = append(out, u)
		}
	}
	return out, nil
}

// passthroughTx runs callbacks directly, without a database.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTx) RunInTransactionWithSavepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testCtx() context.Context {
	return tenant.WithTxManager(context.Background(), passthroughTx{})
}

func TestServiceCreateRejectsDerivedOfDerived(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := testCtx()

	kg := NewUnit("UN-010", "Kilogram", "kg", TypeWeight)
	require.NoError(t, svc.Create(ctx, kg))

	gram := NewDerivedUnit("UN-011", "Gram", "g", TypeWeight, kg.ID.String(), dec("0.001"))
	require.NoError(t, svc.Create(ctx, gram))

	// a unit derived from gram would create a chain
	milligram := NewDerivedUnit("UN-012", "Milligram", "mg", TypeWeight, gram.ID.String(), dec("0.001"))
	err := svc.Create(ctx, milligram)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base unit")
}

func TestServiceCreateRejectsDuplicateSymbol(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := testCtx()

	require.NoError(t, svc.Create(ctx, NewUnit("UN-001", "Piece", "pcs", TypePiece)))

	err := svc.Create(ctx, NewUnit("UN-002", "Pieces", "pcs", TypePiece))
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
}

func TestServiceCreateRejectsTypeMismatchWithBase(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := testCtx()

	kg := NewUnit("UN-010", "Kilogram", "kg", TypeWeight)
	require.NoError(t, svc.Create(ctx, kg))

	box := NewDerivedUnit("UN-011", "Box", "box", TypePiece, kg.ID.String(), dec("12"))
	err := svc.Create(ctx, box)
	require.Error(t, err)
}

func TestServiceCompatibleUnits(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := testCtx()

	kg := NewUnit("UN-010", "Kilogram", "kg", TypeWeight)
	require.NoError(t, svc.Create(ctx, kg))

	gram := NewDerivedUnit("UN-011", "Gram", "g", TypeWeight, kg.ID.String(), dec("0.001"))
	tonne := NewDerivedUnit("UN-012", "Tonne", "t", TypeWeight, kg.ID.String(), dec("1000"))
	require.NoError(t, svc.Create(ctx, gram))
	require.NoError(t, svc.Create(ctx, tonne))

	// unrelated hierarchy
	pcs := NewUnit("UN-001", "Piece", "pcs", TypePiece)
	require.NoError(t, svc.Create(ctx, pcs))

	units, err := svc.CompatibleUnits(ctx, kg.ID)
	require.NoError(t, err)
	require.Len(t, units, 3)
	assert.Equal(t, kg.ID, units[0].ID)

	// asking from a derived unit resolves through its base
	fromDerived, err := svc.CompatibleUnits(ctx, gram.ID)
	require.NoError(t, err)
	assert.Len(t, fromDerived, 3)
}

func TestServiceDeleteRejectsBaseUnitWithDependants(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := testCtx()

	kg := NewUnit("UN-010", "Kilogram", "kg", TypeWeight)
	require.NoError(t, svc.Create(ctx, kg))

	gram := NewDerivedUnit("UN-011", "Gram", "g", TypeWeight, kg.ID.String(), dec("0.001"))
	require.NoError(t, svc.Create(ctx, gram))

	err := svc.Delete(ctx, kg.ID)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
	assert.False(t, repo.units[kg.ID].DeletionMark)

	err = svc.SetDeletionMark(ctx, kg.ID, true)
	require.Error(t, err)
	assert.False(t, repo.units[kg.ID].DeletionMark)

	// deleting the derived unit first unblocks the base
	require.NoError(t, svc.Delete(ctx, gram.ID))
	delete(repo.units, gram.ID)
	require.NoError(t, svc.Delete(ctx, kg.ID))
	assert.True(t, repo.units[kg.ID].DeletionMark)
}

func TestServiceConvertHelpers(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := testCtx()

	kg := NewUnit("UN-010", "Kilogram", "kg", TypeWeight)
	require.NoError(t, svc.Create(ctx, kg))

	gram := NewDerivedUnit("UN-011", "Gram", "g", TypeWeight, kg.ID.String(), dec("0.001"))
	require.NoError(t, svc.Create(ctx, gram))

	got, err := svc.ConvertToBase(ctx, gram.ID, dec("2500"))
	require.NoError(t, err)
	assert.Equal(t, "2.5000", got.StringFixed(4))

	got, err = svc.ConvertFromBase(ctx, gram.ID, dec("2.5"))
	require.NoError(t, err)
	assert.Equal(t, "2500.0000", got.StringFixed(4))
}
