package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresentationFor(t *testing.T) {
	assert.Equal(t, Inline, PresentationFor(0, PopupAuto))
	assert.Equal(t, Inline, PresentationFor(100, PopupAuto))
	assert.Equal(t, Dialog, PresentationFor(101, PopupAuto))
	assert.Equal(t, Dialog, PresentationFor(101, ""))

	// Override wins regardless of count
	assert.Equal(t, Dialog, PresentationFor(1, PopupAlways))
	assert.Equal(t, Inline, PresentationFor(5000, PopupNever))
}

func TestValidPopupMode(t *testing.T) {
	assert.True(t, ValidPopupMode(""))
	assert.True(t, ValidPopupMode("auto"))
	assert.True(t, ValidPopupMode("always"))
	assert.True(t, ValidPopupMode("never"))
	assert.False(t, ValidPopupMode("sometimes"))
}

func TestPresentationString(t *testing.T) {
	assert.Equal(t, "inline", Inline.String())
	assert.Equal(t, "dialog", Dialog.String())
}
