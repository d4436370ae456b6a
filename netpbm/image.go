package netpbm

import (
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"
)

// Image is a decoded Netpbm image: a header plus a row-major 8-bit pixel
// buffer of length Width*Height. The zero value is an unloaded image; every
// accessor besides IsLoaded is only meaningful after a successful decode.
//
// An Image is single-owner: no internal synchronization is performed.
// Read-only concurrent access is safe once loaded, as long as no Load is in
// progress on the same instance.
type Image struct {
	header Header
	pixels []uint8
}

// IsLoaded reports whether the image holds a decoded pixel buffer.
func (m *Image) IsLoaded() bool {
	return m.header.Width > 0 && m.header.Height > 0 && len(m.pixels) > 0
}

// Format returns the variant the image was decoded from.
func (m *Image) Format() Format {
	return m.header.Format
}

// Width returns the width of the image in pixels.
func (m *Image) Width() int {
	return m.header.Width
}

// Height returns the height of the image in pixels.
func (m *Image) Height() int {
	return m.header.Height
}

// MaxValue returns the maximum possible pixel value (at most 255).
func (m *Image) MaxValue() int {
	return m.header.MaxValue
}

// Pixel returns the stored value at (x, y).
//
// Arguments:
// - x: Column, 0 <= x < Width().
// - y: Row, 0 <= y < Height().
//
// Returns:
// - uint8: The value at row-major index y*Width()+x.
// - error: ErrOutOfBounds when the coordinates fall outside the image.
func (m *Image) Pixel(x, y int) (uint8, error) {
	if x < 0 || x >= m.header.Width || y < 0 || y >= m.header.Height {
		return 0, errors.Wrapf(ErrOutOfBounds, "pixel (%d,%d) outside %dx%d image", x, y, m.header.Width, m.header.Height)
	}
	return m.pixels[y*m.header.Width+x], nil
}

// Pix returns the underlying row-major pixel buffer. The caller must not
// mutate it while other readers hold the image.
func (m *Image) Pix() []uint8 {
	return m.pixels
}

// Load decodes the Netpbm file at path into m.
//
// Loading is all-or-nothing: on any error the receiver is left exactly as
// it was, so a failed Load on a fresh Image keeps IsLoaded() == false and a
// failed reload keeps the previously decoded contents intact.
func (m *Image) Load(path string) error {
	decoded, err := DecodeFile(path)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.header.Width, m.header.Height)
}

// At implements image.Image. Coordinates outside the bounds return black,
// matching the stdlib convention for out-of-range access.
func (m *Image) At(x, y int) color.Color {
	value, err := m.Pixel(x, y)
	if err != nil {
		return color.Gray{}
	}
	return color.Gray{Y: value}
}

// DecodeConfig parses only the header region and returns the image
// configuration without decoding pixel data. It is registered with the
// image package for all four magic tokens.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Config{}, errors.Wrap(err, "reading netpbm input")
	}
	header, err := parseHeader(newCursor(data))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.GrayModel,
		Width:      header.Width,
		Height:     header.Height,
	}, nil
}

func init() {
	decode := func(r io.Reader) (image.Image, error) {
		return Decode(r)
	}
	// image.Decode dispatches on the leading magic bytes.
	image.RegisterFormat("pbm", "P1", decode, DecodeConfig)
	image.RegisterFormat("pgm", "P2", decode, DecodeConfig)
	image.RegisterFormat("pbm", "P4", decode, DecodeConfig)
	image.RegisterFormat("pgm", "P5", decode, DecodeConfig)
}
