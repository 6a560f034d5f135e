package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestStyles_RenderKeepsText(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Title.Render("namereg"), "namereg")
	assert.Contains(t, s.Error.Render("boom"), "boom")
}
