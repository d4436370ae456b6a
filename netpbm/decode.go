package netpbm

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Decode reads a complete Netpbm stream from r and decodes it into an Image.
//
// Arguments:
// - r: Reader positioned at the start of a Netpbm file.
//
// Returns:
// - *Image: The decoded image with a width*height pixel buffer.
// - error: ErrInvalidFormat, ErrUnsupportedDepth, or ErrTruncatedData
//   (wrapped with context), or the underlying read error.
//
// The whole input is read into memory first; decoding is a one-shot,
// synchronous operation with no partial results on failure.
func Decode(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading netpbm input")
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes an in-memory Netpbm file.
func DecodeBytes(data []byte) (*Image, error) {
	c := newCursor(data)
	header, err := parseHeader(c)
	if err != nil {
		return nil, err
	}
	pixels, err := decodePixels(c, header)
	if err != nil {
		return nil, err
	}
	return &Image{header: header, pixels: pixels}, nil
}

// DecodeFile reads and decodes the Netpbm file at path.
func DecodeFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return DecodeBytes(data)
}

// decodePixels dispatches on the header format and fills a row-major
// width*height buffer. Every format normalizes to 8-bit values: bitmap
// pixels are scaled to 0/255, graymap pixels are stored as read.
func decodePixels(c *cursor, header Header) ([]uint8, error) {
	pixels := make([]uint8, header.Width*header.Height)

	var err error
	switch header.Format {
	case FormatASCIIBitmap:
		err = decodeASCIIBitmap(c, header, pixels)
	case FormatASCIIGraymap:
		err = decodeASCIIGraymap(c, header, pixels)
	case FormatBinaryBitmap:
		err = decodeBinaryBitmap(c, header, pixels)
	case FormatBinaryGraymap:
		err = decodeBinaryGraymap(c, header, pixels)
	default:
		err = errors.Wrapf(ErrInvalidFormat, "no decoder for format %d", header.Format)
	}
	if err != nil {
		return nil, err
	}
	return pixels, nil
}

// decodeASCIIBitmap reads width*height whitespace-separated 0/1 tokens and
// scales each by 255 for uniformity with the graymap formats.
func decodeASCIIBitmap(c *cursor, header Header, pixels []uint8) error {
	for j := 0; j < header.Height; j++ {
		for i := 0; i < header.Width; i++ {
			index := i + j*header.Width
			value, ok := c.readUint()
			if !ok {
				return pixelReadError(c, index, len(pixels))
			}
			if value > 1 {
				return errors.Wrapf(ErrInvalidFormat, "bitmap token %d at pixel %d is not 0 or 1", value, index)
			}
			pixels[index] = uint8(value) * 255
		}
	}
	return nil
}

// decodeASCIIGraymap reads width*height whitespace-separated tokens in
// 0..MaxValue. Values are stored literally, capped to a byte; there is no
// rescaling to 255 when MaxValue is smaller.
func decodeASCIIGraymap(c *cursor, header Header, pixels []uint8) error {
	for j := 0; j < header.Height; j++ {
		for i := 0; i < header.Width; i++ {
			index := i + j*header.Width
			value, ok := c.readUint()
			if !ok {
				return pixelReadError(c, index, len(pixels))
			}
			if value > 255 {
				value = 255
			}
			pixels[index] = uint8(value)
		}
	}
	return nil
}

// decodeBinaryBitmap unpacks pixels stored 8 per byte, most significant bit
// first, scaling each bit by 255.
//
// Packing is continuous within a row: the inner loop advances 8 pixels per
// byte and does not realign to a byte boundary at the start of the next row.
// When width is not a multiple of 8 the trailing bits of a row's final byte
// spill into the following row, so decoding is only exact for widths that
// are a multiple of 8. Known limitation.
func decodeBinaryBitmap(c *cursor, header Header, pixels []uint8) error {
	// Separator whitespace between the header and the packed payload.
	c.skipWhitespace()

	for j := 0; j < header.Height; j++ {
		for i := 0; i < header.Width; i += 8 {
			b, ok := c.readByte()
			if !ok {
				return pixelReadError(c, i+j*header.Width, len(pixels))
			}
			for k := 0; k < 8; k++ {
				index := i + k + j*header.Width
				if index >= len(pixels) {
					break
				}
				// High bit is the first pixel of this group.
				bit := (b >> (7 - k)) & 0x1
				pixels[index] = bit * 255
			}
		}
	}
	return nil
}

// decodeBinaryGraymap reads exactly one byte per pixel, verbatim, in
// row-major order.
func decodeBinaryGraymap(c *cursor, header Header, pixels []uint8) error {
	// Separator whitespace between the header and the raw payload.
	c.skipWhitespace()

	if c.remaining() < len(pixels) {
		return errors.Wrapf(ErrTruncatedData, "need %d pixel bytes, have %d", len(pixels), c.remaining())
	}
	for index := range pixels {
		b, _ := c.readByte()
		pixels[index] = b
	}
	return nil
}

// pixelReadError classifies a failed pixel read: end of input is a
// truncation, anything else is a grammar violation.
func pixelReadError(c *cursor, index, total int) error {
	if c.eof() {
		return errors.Wrapf(ErrTruncatedData, "input ended at pixel %d of %d", index, total)
	}
	return errors.Wrapf(ErrInvalidFormat, "malformed token at pixel %d of %d", index, total)
}
