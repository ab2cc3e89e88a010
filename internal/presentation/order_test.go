package presentation

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderForDisplay(t *testing.T) {
	tests := []struct {
		name   string
		in     []string
		sticky map[string]struct{}
		want   []string
	}{
		{name: "empty", in: nil, sticky: set("a"), want: []string{}},
		{name: "single sticky moves to front", in: []string{"A", "B", "C", "D"}, sticky: set("C"), want: []string{"C", "A", "B", "D"}},
		{name: "no sticky keeps order", in: []string{"A", "B", "C"}, sticky: set(), want: []string{"A", "B", "C"}},
		{name: "all sticky keeps order", in: []string{"A", "B", "C"}, sticky: set("A", "B", "C"), want: []string{"A", "B", "C"}},
		{name: "partitions stay stable", in: []string{"A", "B", "C", "D", "E"}, sticky: set("D", "B"), want: []string{"B", "D", "A", "C", "E"}},
		{name: "unknown sticky ids ignored", in: []string{"A", "B"}, sticky: set("Z"), want: []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]*models.Listing, 0, len(tt.in))
			for _, id := range tt.in {
				in = append(in, listing(id))
			}

			got, err := OrderForDisplay(in, tt.sticky)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestOrderForDisplay_DoesNotMutateInput(t *testing.T) {
	in := []*models.Listing{listing("A"), listing("B"), listing("C")}

	_, err := OrderForDisplay(in, set("C"))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, ids(in))
}

func TestOrderForDisplay_Idempotent(t *testing.T) {
	in := []*models.Listing{listing("A"), listing("B"), listing("C"), listing("D"), listing("E")}
	sticky := set("E", "B")

	once, err := OrderForDisplay(in, sticky)
	require.NoError(t, err)
	twice, err := OrderForDisplay(once, sticky)
	require.NoError(t, err)

	assert.Equal(t, ids(once), ids(twice))
}

func TestOrderForDisplay_NilListing(t *testing.T) {
	in := []*models.Listing{listing("A"), nil}

	got, err := OrderForDisplay(in, set())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNilListing))
	assert.Contains(t, err.Error(), "position 1")
	assert.Nil(t, got)
}
