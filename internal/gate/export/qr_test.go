package export

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRBadge(t *testing.T) {
	raw, err := QRBadge("ST1004")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, BadgeSize, img.Bounds().Dx())
	assert.Equal(t, BadgeSize, img.Bounds().Dy())
}

func TestQRFileName(t *testing.T) {
	assert.Equal(t, "QRCode_ST1004.png", QRFileName("ST1004"))
}
