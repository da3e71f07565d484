package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVergeTextureIsDeterministic(t *testing.T) {
	a := vergeTexture(64, 48, 3)
	b := vergeTexture(64, 48, 3)
	c := vergeTexture(64, 48, 4)

	assert.Equal(t, a.Pix, b.Pix)
	assert.NotEqual(t, a.Pix, c.Pix)
	assert.Equal(t, 64, a.Bounds().Dx())
	assert.Equal(t, 48, a.Bounds().Dy())
}
