package catalog_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradewind/internal/domain/filter"
)

func testRepo() *BaseCatalogRepo[any] {
	return NewBaseCatalogRepo("test_table", []string{"id", "code", "name", "price"}, func() any { return nil })
}

func TestApplyAdvancedFiltersOperators(t *testing.T) {
	repo := testRepo()

	tests := []struct {
		name     string
		item     filter.Item
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "equal",
			item:     filter.Item{Field: "code", Operator: filter.Equal, Value: "KG"},
			wantSQL:  "SELECT id, code, name, price FROM test_table WHERE code = $1",
			wantArgs: []any{"KG"},
		},
		{
			name:     "greater",
			item:     filter.Item{Field: "price", Operator: filter.Greater, Value: 10},
			wantSQL:  "SELECT id, code, name, price FROM test_table WHERE price > $1",
			wantArgs: []any{10},
		},
		{
			name:     "less",
			item:     filter.Item{Field: "price", Operator: filter.Less, Value: 5},
			wantSQL:  "SELECT id, code, name, price FROM test_table WHERE price < $1",
			wantArgs: []any{5},
		},
		{
			name:     "is null",
			item:     filter.Item{Field: "name", Operator: filter.IsNull},
			wantSQL:  "SELECT id, code, name, price FROM test_table WHERE name IS NULL",
			wantArgs: nil,
		},
		{
			name:     "contains",
			item:     filter.Item{Field: "name", Operator: filter.Contains, Value: "kilo"},
			wantSQL:  "SELECT id, code, name, price FROM test_table WHERE name ILIKE $1",
			wantArgs: []any{"%kilo%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := repo.applyAdvancedFilters(repo.baseSelect(), []filter.Item{tt.item})
			require.NoError(t, err)

			sql, args, err := q.ToSql()
			require.NoError(t, err)

			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestApplyAdvancedFiltersRejectsUnknownColumn(t *testing.T) {
	repo := testRepo()

	_, err := repo.applyAdvancedFilters(repo.baseSelect(), []filter.Item{
		{Field: "name; DROP TABLE users", Operator: filter.Equal, Value: "x"},
	})
	assert.Error(t, err)
}

func TestParseOrderBy(t *testing.T) {
	repo := testRepo()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: "name ASC"},
		{in: "code", want: "code ASC"},
		{in: "-price", want: "price DESC"},
		{in: "+name", want: "name ASC"},
		{in: "no_such_column", wantErr: true},
		{in: "-", wantErr: true},
	}

	for _, tt := range tests {
		got, err := repo.parseOrderBy(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "orderBy %q", tt.in)
			continue
		}
		require.NoError(t, err, "orderBy %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
