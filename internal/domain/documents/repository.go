package documents

import (
	"context"
	"time"

	"tradewind/internal/core/id"
	"tradewind/internal/domain"
	"tradewind/internal/domain/filter"
)

// ListFilter extends catalog filtering with document-specific conditions.
type ListFilter struct {
	Search          string
	IncludeDeleted  bool
	DateFrom        *time.Time
	DateTo          *time.Time
	CounterpartyID  *id.ID
	Posted          *bool
	Status          string
	AdvancedFilters []filter.Item
	OrderBy         string
	Limit           int
	Offset          int
}

// DefaultListFilter returns sensible defaults (newest first).
func DefaultListFilter() ListFilter {
	return ListFilter{
		Limit:   50,
		OrderBy: "-date",
	}
}

// Repository defines persistence for one trade document type.
// The header and the line collection are stored separately; SaveLines
// replaces the full set.
type Repository[T Doc] interface {
	Create(ctx context.Context, doc T) error
	GetByID(ctx context.Context, docID id.ID) (T, error)
	GetByNumber(ctx context.Context, number string) (T, error)

	// Update writes the header guarded by the version column.
	Update(ctx context.Context, doc T) error

	// SetDeletionMark soft-deletes or restores the document.
	SetDeletionMark(ctx context.Context, docID id.ID, marked bool) error

	List(ctx context.Context, f ListFilter) (domain.ListResult[T], error)

	// GetLines loads the ordered line set of a document.
	GetLines(ctx context.Context, docID id.ID) ([]Line, error)

	// SaveLines replaces the full line set of a document.
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	Exists(ctx context.Context, docID id.ID) (bool, error)
}
