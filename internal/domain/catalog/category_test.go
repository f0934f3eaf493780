package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory_ValidInput(t *testing.T) {
	cat, err := NewCategory("Elegant")

	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, uint(0), cat.ID())
	assert.Equal(t, "Elegant", cat.Name())
	assert.False(t, cat.CreatedAt().IsZero())
}

func TestNewCategory_TrimsWhitespace(t *testing.T) {
	cat, err := NewCategory("  Rustic  ")

	require.NoError(t, err)
	assert.Equal(t, "Rustic", cat.Name())
}

func TestNewCategory_EmptyName(t *testing.T) {
	cat, err := NewCategory("   ")

	assert.Error(t, err)
	assert.Nil(t, cat)
}

func TestNewCategory_NameTooLong(t *testing.T) {
	cat, err := NewCategory(strings.Repeat("a", 101))

	assert.Error(t, err)
	assert.Nil(t, cat)
}

func TestCategory_SetID(t *testing.T) {
	cat, err := NewCategory("Minimalist")
	require.NoError(t, err)

	require.NoError(t, cat.SetID(7))
	assert.Equal(t, uint(7), cat.ID())

	assert.Error(t, cat.SetID(8), "ID should only be assignable once")
}

func TestCategory_SetID_Zero(t *testing.T) {
	cat, err := NewCategory("Minimalist")
	require.NoError(t, err)

	assert.Error(t, cat.SetID(0))
}

func TestCategory_Rename(t *testing.T) {
	cat, err := NewCategory("Clasic")
	require.NoError(t, err)

	require.NoError(t, cat.Rename("Classic"))
	assert.Equal(t, "Classic", cat.Name())

	assert.Error(t, cat.Rename(""))
	assert.Equal(t, "Classic", cat.Name(), "failed rename should not change the name")
}

func TestReconstructCategory(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	cat, err := ReconstructCategory(3, "Floral", created)

	require.NoError(t, err)
	assert.Equal(t, uint(3), cat.ID())
	assert.Equal(t, "Floral", cat.Name())
	assert.Equal(t, created, cat.CreatedAt())
}
