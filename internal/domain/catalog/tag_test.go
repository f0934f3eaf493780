package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamaran-inc/lamaran/internal/domain/appearance"
)

func TestNewTag_ValidInput(t *testing.T) {
	tag, err := NewTag("Best Seller", appearance.GradientEmeraldTeal, appearance.IconCrown)

	require.NoError(t, err)
	require.NotNil(t, tag)
	assert.Equal(t, "Best Seller", tag.Name())
	assert.Equal(t, appearance.GradientEmeraldTeal, tag.Color())
	assert.Equal(t, appearance.IconCrown, tag.Icon())
}

func TestNewTag_EmptyName(t *testing.T) {
	tag, err := NewTag("", appearance.GradientEmeraldTeal, appearance.IconStar)

	assert.Error(t, err)
	assert.Nil(t, tag)
}

func TestNewTag_InvalidColor(t *testing.T) {
	tag, err := NewTag("New", appearance.GradientToken("bg-red-500"), appearance.IconStar)

	assert.Error(t, err)
	assert.Nil(t, tag)
}

func TestNewTag_InvalidIcon(t *testing.T) {
	tag, err := NewTag("New", appearance.GradientEmeraldTeal, appearance.IconName("Rocket"))

	assert.Error(t, err)
	assert.Nil(t, tag)
}

func TestTag_Update(t *testing.T) {
	tag, err := NewTag("Promo", appearance.GradientEmeraldTeal, appearance.IconStar)
	require.NoError(t, err)

	require.NoError(t, tag.Update("Diskon", appearance.GradientGraySoft, appearance.IconFlame))
	assert.Equal(t, "Diskon", tag.Name())
	assert.Equal(t, appearance.GradientGraySoft, tag.Color())
	assert.Equal(t, appearance.IconFlame, tag.Icon())
}

func TestTag_Update_InvalidIcon(t *testing.T) {
	tag, err := NewTag("Promo", appearance.GradientEmeraldTeal, appearance.IconStar)
	require.NoError(t, err)

	assert.Error(t, tag.Update("Promo", appearance.GradientEmeraldTeal, appearance.IconName("Unknown")))
	assert.Equal(t, appearance.IconStar, tag.Icon(), "failed update should not change the icon")
}
