package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 51, 255})
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, got)
}

func TestPaletteTier(t *testing.T) {
	p := Palette{
		Text:         color.RGBA{1, 1, 1, 255},
		AttackerTier: []color.RGBA{{0, 0, 0, 255}, {1, 0, 0, 255}, {2, 0, 0, 255}},
	}
	tests := []struct {
		tier int
		want color.RGBA
	}{
		{-1, color.RGBA{0, 0, 0, 255}},
		{0, color.RGBA{0, 0, 0, 255}},
		{2, color.RGBA{2, 0, 0, 255}},
		{9, color.RGBA{2, 0, 0, 255}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Tier(tt.tier))
	}
	assert.Equal(t, p.Text, Palette{Text: p.Text}.Tier(1))
}
