package artifact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenCSV(t *testing.T) {
	t.Parallel()

	in := "Item, Expiry ,Qty\nmilk,2025-06-20,2\n ,,\neggs,2025-06-18\n"

	out, err := FlattenCSV(strings.NewReader(in))

	require.NoError(t, err)
	assert.Contains(t, out, "Record 1:\n  Item: milk\n  Expiry: 2025-06-20\n  Qty: 2")
	assert.Contains(t, out, "Item: eggs")
	assert.NotContains(t, out, "Qty: \n  Qty", "blank rows are skipped")
}

func TestFlattenCSVExtraColumnsIgnored(t *testing.T) {
	t.Parallel()

	out, err := FlattenCSV(strings.NewReader("a,b\n1,2,3\n"))

	require.NoError(t, err)
	assert.Contains(t, out, "a: 1")
	assert.Contains(t, out, "b: 2")
	assert.NotContains(t, out, ": 3")
}

func TestFlattenCSVEmpty(t *testing.T) {
	t.Parallel()

	_, err := FlattenCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyArtifact)

	_, err = FlattenCSV(strings.NewReader("header1,header2\n"))
	assert.ErrorIs(t, err, ErrEmptyArtifact)

	_, err = FlattenCSV(strings.NewReader("h1,h2\n,\n , \n"))
	assert.ErrorIs(t, err, ErrEmptyArtifact)
}
