package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func titles(ps []Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}

func TestFilterByQuery(t *testing.T) {
	got := Filter(SampleProducts, "KAOS", CategoryAll)
	assert.Equal(t, []string{"Kaos Retro"}, titles(got))

	got = Filter(SampleProducts, "tidak ada", CategoryAll)
	assert.Empty(t, got)
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(SampleProducts, "", "Elektronik")
	assert.Equal(t, []string{"Headset Gaming", "Powerbank 10.000mAh"}, titles(got))
}

func TestFilterAllSentinel(t *testing.T) {
	got := Filter(SampleProducts, "", CategoryAll)
	assert.Len(t, got, len(SampleProducts))
	// order preserved
	assert.Equal(t, titles(SampleProducts), titles(got))
}

func TestFilterQueryAndCategory(t *testing.T) {
	got := Filter(SampleProducts, "power", "Elektronik")
	assert.Equal(t, []string{"Powerbank 10.000mAh"}, titles(got))

	got = Filter(SampleProducts, "power", "Pakaian")
	assert.Empty(t, got)
}

func TestCategories(t *testing.T) {
	got := Categories(SampleProducts)
	assert.Equal(t, []string{"Semua", "Pakaian", "Elektronik", "Sepatu", "Aksesoris"}, got)
}
