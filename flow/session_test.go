package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionTogglePairIsIdentity(t *testing.T) {
	s := NewSelection()
	s.Toggle("Ruscha")
	assert.True(t, s.Has("Ruscha"))

	s.Toggle("Ruscha")
	assert.False(t, s.Has("Ruscha"))
	assert.True(t, s.Empty())
}

func TestSelectionInCatalogOrder(t *testing.T) {
	catalog := []string{"a", "b", "c", "d"}

	s := NewSelection()
	s.Toggle("d")
	s.Toggle("b")
	assert.Equal(t, []string{"b", "d"}, s.InCatalogOrder(catalog))

	// Members outside the catalog never surface.
	s.Toggle("x")
	assert.Equal(t, []string{"b", "d"}, s.InCatalogOrder(catalog))

	assert.Nil(t, NewSelection().InCatalogOrder(catalog))
}

func TestSelectionSnapshotIsDetached(t *testing.T) {
	s := NewSelection()
	s.Toggle("a")
	snap := s.snapshot()

	s.Toggle("b")
	assert.True(t, snap.Has("a"))
	assert.False(t, snap.Has("b"))
}
