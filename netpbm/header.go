package netpbm

import "github.com/pkg/errors"

const (
	// maxImageDimension caps width/height to avoid excessive allocations when
	// corrupted files lie about image sizes.
	maxImageDimension = 32768
	// maxImagePixels bounds the total pixel count (64MP), which also keeps
	// width*height well clear of int overflow.
	maxImagePixels = 64 * 1024 * 1024
)

// Header carries the parsed metadata of a Netpbm file.
type Header struct {
	// Format is the detected file variant.
	Format Format
	// Width of the image in pixels.
	Width int
	// Height of the image in pixels.
	Height int
	// MaxValue is the maximum pixel value declared by graymap headers.
	// Bitmap formats carry no max-value token and default to 255.
	MaxValue int
}

// parseHeader consumes the header region from the cursor and validates it.
//
// The grammar, in order: a magic line (exactly "P1", "P2", "P4", or "P5"),
// an optional single comment line introduced by '#', the width and height as
// whitespace-separated decimals, and for graymap formats a max-value token.
//
// Returns ErrInvalidFormat for grammar violations and ErrUnsupportedDepth
// for max values above 255. On error the cursor position is unspecified and
// the caller must not continue decoding.
func parseHeader(c *cursor) (Header, error) {
	header := Header{MaxValue: 255}

	magic := c.readLine()
	format, err := DetectFormat(magic)
	if err != nil {
		return Header{}, err
	}
	header.Format = format

	// A single comment line may follow the magic. Multiple consecutive
	// comment lines are not part of the supported grammar.
	if b, ok := c.peek(); ok && b == '#' {
		c.skipLine()
	}

	width, ok := c.readUint()
	if !ok {
		return Header{}, errors.Wrap(ErrInvalidFormat, "missing or malformed width")
	}
	height, ok := c.readUint()
	if !ok {
		return Header{}, errors.Wrap(ErrInvalidFormat, "missing or malformed height")
	}
	if err := validateDimensions(width, height); err != nil {
		return Header{}, err
	}
	header.Width = width
	header.Height = height

	// Only graymap formats declare a max value. Bitmap pixel streams begin
	// immediately after the dimensions.
	if !format.IsBitmap() {
		maxValue, ok := c.readUint()
		if !ok {
			return Header{}, errors.Wrap(ErrInvalidFormat, "missing or malformed max value")
		}
		if maxValue > 255 {
			return Header{}, errors.Wrapf(ErrUnsupportedDepth, "max value %d exceeds 255", maxValue)
		}
		header.MaxValue = maxValue
	}

	return header, nil
}

// validateDimensions rejects oversized dimensions and products that would
// exceed the pixel budget. Zero dimensions are legal and yield an empty
// buffer.
func validateDimensions(width, height int) error {
	if width > maxImageDimension || height > maxImageDimension {
		return errors.Wrapf(ErrInvalidFormat, "image dimensions %dx%d exceed limit %d", width, height, maxImageDimension)
	}
	if width*height > maxImagePixels {
		return errors.Wrapf(ErrInvalidFormat, "pixel count %d exceeds limit %d", width*height, maxImagePixels)
	}
	return nil
}
