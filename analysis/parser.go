package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"shelfwise/models"
)

// linePattern pairs a compiled pattern with the capture-group positions of the
// quantity and name. Patterns are tried in order; the first match wins.
type linePattern struct {
	re        *regexp.Regexp
	qtyGroup  int
	nameGroup int
}

// Ordered by priority. A line like "3 Cement Bags (3)" matches both the
// parenthesized and the quantity-first form; the order here resolves it.
var linePatterns = []linePattern{
	{regexp.MustCompile(`^(\d+)\s*[xX]\s*(.+)$`), 1, 2},  // "12x Coca Cola Cans"
	{regexp.MustCompile(`^(.+?):\s*(\d+)\s*$`), 2, 1},    // "Water Bottles: 15"
	{regexp.MustCompile(`^(.+?)\s*\((\d+)\)\s*$`), 2, 1}, // "Cement Bags (3)"
	{regexp.MustCompile(`^(\d+)\s+(.+)$`), 1, 2},         // "8 Potato Chips Bags"
}

// ParseInventoryItems converts a free-text item list from the vision model
// into structured items, one candidate per line. Lines that match no pattern,
// or that yield an empty name or a non-positive quantity, are skipped without
// error. Duplicate names are not merged; the upsert layer handles that.
func ParseInventoryItems(text string) []models.ParsedItem {
	items := make([]models.ParsedItem, 0)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, p := range linePatterns {
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			name := strings.TrimSpace(m[p.nameGroup])
			qty, err := strconv.Atoi(m[p.qtyGroup])
			if name == "" || err != nil || qty <= 0 {
				break
			}

			items = append(items, models.ParsedItem{Name: name, Quantity: qty})
			break
		}
	}

	return items
}
