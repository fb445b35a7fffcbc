package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tradewind/internal/core/entity"
	"tradewind/internal/core/id"
)

type mockCatalog struct {
	entity.Catalog
	Symbol string   `db:"symbol" json:"symbol"`
	Lines  []string `db:"-" json:"lines"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expected := []string{
		"id", "deletion_mark", "version", "attributes",
		"code", "name", "parent_id", "is_folder", "symbol",
	}
	for _, col := range expected {
		assert.Contains(t, cols, col)
	}
	assert.NotContains(t, cols, "-")
}

func TestStructToMap(t *testing.T) {
	cat := mockCatalog{
		Catalog: entity.Catalog{
			BaseCatalog: entity.BaseCatalog{
				BaseEntity: entity.BaseEntity{
					ID:           id.New(),
					DeletionMark: true,
					Version:      5,
				},
			},
			Code: "KG",
			Name: "Kilogram",
		},
		Symbol: "kg",
		Lines:  []string{"ignored"},
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "KG", m["code"])
	assert.Equal(t, "Kilogram", m["name"])
	assert.Equal(t, "kg", m["symbol"])
	assert.NotContains(t, m, "-")
}

func TestStructToMapPointerInput(t *testing.T) {
	cat := &mockCatalog{Symbol: "pc"}
	m := StructToMap(cat)
	assert.Equal(t, "pc", m["symbol"])
}
