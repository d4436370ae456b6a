package netpbm

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelOutOfBounds(t *testing.T) {
	img, err := DecodeBytes([]byte("P2\n3 2\n255\n1 2 3 4 5 6\n"))
	require.NoError(t, err, "valid input should decode")

	testCases := []struct {
		name string
		x, y int
	}{
		{name: "x at width", x: 3, y: 0},
		{name: "y at height", x: 0, y: 2},
		{name: "negative x", x: -1, y: 0},
		{name: "negative y", x: 0, y: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, pixErr := img.Pixel(tc.x, tc.y)
			assert.True(t, errors.Is(pixErr, ErrOutOfBounds), "expected ErrOutOfBounds, got %v", pixErr)
		})
	}
}

func TestZeroValueImage(t *testing.T) {
	var img Image

	assert.False(t, img.IsLoaded(), "zero-value image should not report as loaded")
	assert.Equal(t, 0, img.Width(), "zero-value width should be zero")
	assert.Equal(t, 0, img.Height(), "zero-value height should be zero")

	_, err := img.Pixel(0, 0)
	assert.True(t, errors.Is(err, ErrOutOfBounds), "pixel query on an unloaded image should fail")
}

// TestLoadIsAllOrNothing pins the lifecycle contract: a failed load leaves
// the receiver exactly as it was.
func TestLoadIsAllOrNothing(t *testing.T) {
	dir := t.TempDir()

	goodPath := filepath.Join(dir, "good.pgm")
	require.NoError(t, os.WriteFile(goodPath, []byte("P2\n2 1\n255\n10 20\n"), 0o644), "writing fixture should succeed")
	badPath := filepath.Join(dir, "bad.pgm")
	require.NoError(t, os.WriteFile(badPath, []byte("XX\nnot a netpbm file\n"), 0o644), "writing fixture should succeed")

	var img Image
	err := img.Load(badPath)
	assert.True(t, errors.Is(err, ErrInvalidFormat), "bad magic should fail with ErrInvalidFormat")
	assert.False(t, img.IsLoaded(), "failed load should leave the image unloaded")

	require.NoError(t, img.Load(goodPath), "good file should load")
	require.True(t, img.IsLoaded(), "image should be loaded")

	err = img.Load(badPath)
	assert.Error(t, err, "reloading a bad file should fail")
	assert.Equal(t, []uint8{10, 20}, img.Pix(), "failed reload should leave previous contents intact")
	assert.Equal(t, 2, img.Width(), "failed reload should leave dimensions intact")
}

func TestLoadMissingFile(t *testing.T) {
	var img Image
	err := img.Load(filepath.Join(t.TempDir(), "does-not-exist.pgm"))
	assert.Error(t, err, "missing file should fail")
	assert.False(t, img.IsLoaded(), "image should stay unloaded")
}

func TestImageImplementsImageInterface(t *testing.T) {
	img, err := DecodeBytes([]byte("P2\n2 2\n255\n0 128 255 64\n"))
	require.NoError(t, err, "valid input should decode")

	var _ image.Image = img

	assert.Equal(t, color.GrayModel, img.ColorModel(), "color model should be grayscale")
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds(), "bounds should match dimensions")
	assert.Equal(t, color.Gray{Y: 128}, img.At(1, 0), "At should return the stored gray value")
	assert.Equal(t, color.Gray{}, img.At(5, 5), "out-of-bounds At should return black")
}

func TestDecodeConfig(t *testing.T) {
	conf, err := DecodeConfig(bytes.NewReader([]byte("P5\n640 480\n255\n")))
	require.NoError(t, err, "header-only config decode should succeed")

	assert.Equal(t, 640, conf.Width, "config width should match")
	assert.Equal(t, 480, conf.Height, "config height should match")
	assert.Equal(t, color.GrayModel, conf.ColorModel, "config color model should be grayscale")
}

// TestRegisteredWithImagePackage verifies the stdlib dispatch path: the
// decoder is registered for all four magic tokens.
func TestRegisteredWithImagePackage(t *testing.T) {
	decoded, name, err := image.Decode(bytes.NewReader([]byte("P2\n1 1\n255\n9\n")))
	require.NoError(t, err, "image.Decode should dispatch to the netpbm decoder")
	assert.Equal(t, "pgm", name, "P2 should register as pgm")
	assert.Equal(t, color.Gray{Y: 9}, decoded.At(0, 0), "decoded pixel should match")

	_, name, err = image.Decode(bytes.NewReader([]byte("P1\n1 1\n1\n")))
	require.NoError(t, err, "image.Decode should handle P1")
	assert.Equal(t, "pbm", name, "P1 should register as pbm")

	_, _, err = image.DecodeConfig(bytes.NewReader([]byte("P5\n2 2\n255\n")))
	assert.NoError(t, err, "image.DecodeConfig should dispatch for P5")
}
