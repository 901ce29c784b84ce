package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shelfwise/models"
)

func TestParseInventoryItems(t *testing.T) {
	text := "12x Coca Cola Cans\n8 Potato Chips Bags\nWater Bottles: 15"

	items := ParseInventoryItems(text)

	assert.Equal(t, []models.ParsedItem{
		{Name: "Coca Cola Cans", Quantity: 12},
		{Name: "Potato Chips Bags", Quantity: 8},
		{Name: "Water Bottles", Quantity: 15},
	}, items)
}

func TestParseInventoryItemsPatterns(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []models.ParsedItem
	}{
		{"quantity x name", "3 x Milk Cartons", []models.ParsedItem{{Name: "Milk Cartons", Quantity: 3}}},
		{"quantity x name uppercase", "4X Bread Loaves", []models.ParsedItem{{Name: "Bread Loaves", Quantity: 4}}},
		{"name colon quantity", "Sugar Packs: 20", []models.ParsedItem{{Name: "Sugar Packs", Quantity: 20}}},
		{"name parens quantity", "Flour Bags (7)", []models.ParsedItem{{Name: "Flour Bags", Quantity: 7}}},
		{"quantity name", "9 Egg Trays", []models.ParsedItem{{Name: "Egg Trays", Quantity: 9}}},
		{"zero quantity skipped", "0 Empty Boxes", []models.ParsedItem{}},
		{"no pattern skipped", "not a valid line", []models.ParsedItem{}},
		{"blank skipped", "   ", []models.ParsedItem{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInventoryItems(tt.line))
		})
	}
}

// "3 Cement Bags (3)" matches both the parenthesized pattern and the
// quantity-first pattern. Priority order picks the parenthesized one.
func TestParseInventoryItemsAmbiguousLine(t *testing.T) {
	items := ParseInventoryItems("3 Cement Bags (3)")

	assert.Equal(t, []models.ParsedItem{{Name: "3 Cement Bags", Quantity: 3}}, items)
}

func TestParseInventoryItemsGarbageOnly(t *testing.T) {
	assert.Empty(t, ParseInventoryItems("not a valid line\n\n"))
}

func TestParseInventoryItemsPreservesOrderAndDuplicates(t *testing.T) {
	items := ParseInventoryItems("2x Soap\nSoap: 5")

	// The parser never merges duplicates; that is the upsert layer's job.
	assert.Equal(t, []models.ParsedItem{
		{Name: "Soap", Quantity: 2},
		{Name: "Soap", Quantity: 5},
	}, items)
}
