package catalog

import "strings"

// Filter returns the products whose title contains query (case-insensitive)
// and whose category equals category. CategoryAll matches everything.
// Catalog order is preserved.
func Filter(products []Product, query, category string) []Product {
	q := strings.ToLower(query)
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Title), q) {
			continue
		}
		if category != CategoryAll && category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories lists CategoryAll followed by distinct categories in catalog order.
func Categories(products []Product) []string {
	out := []string{CategoryAll}
	seen := map[string]bool{}
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
