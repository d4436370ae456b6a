// Package util - filesystem helpers for loading Netpbm image files.
package util

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-netpbm/netpbm"
)

// ImageFile represents a Netpbm image file read from disk.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Data is the raw bytes of the image file.
	Data []byte
	// Frame is the frame number parsed from a "frame-N" style file name, or
	// -1 when the name carries no frame number.
	Frame int
}

// LoadDirectoryImageFiles reads all Netpbm image files from a directory.
//
// Files are matched by extension (.pbm, .pgm) and returned sorted by frame
// number, then by path for files without one.
//
// Arguments:
// - dir: Directory path containing image files.
//
// Returns:
// - []ImageFile: Slice of ImageFile, each containing the raw bytes of an image file.
// - error: Error if loading fails.
func LoadDirectoryImageFiles(dir string) ([]ImageFile, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var images []ImageFile
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := filepath.Ext(file.Name())
		switch ext {
		case ".pbm", ".pgm":
			imgPath := filepath.Join(dir, file.Name())
			data, readErr := os.ReadFile(imgPath)
			if readErr != nil {
				return nil, readErr
			}
			images = append(images, ImageFile{
				Path:  imgPath,
				Data:  data,
				Frame: frameNumber(file.Name(), ext),
			})
		}
	}

	sort.Slice(images, func(i, j int) bool {
		if images[i].Frame != images[j].Frame {
			return images[i].Frame < images[j].Frame
		}
		return images[i].Path < images[j].Path
	})

	return images, nil
}

// LoadDirectoryImages reads and decodes every Netpbm image file in a
// directory, in frame order.
//
// Arguments:
// - dir: Directory path containing image files.
//
// Returns:
// - []*netpbm.Image: Decoded images, one per file.
// - error: Error if reading or decoding any file fails.
func LoadDirectoryImages(dir string) ([]*netpbm.Image, error) {
	files, err := LoadDirectoryImageFiles(dir)
	if err != nil {
		return nil, err
	}

	images := make([]*netpbm.Image, 0, len(files))
	for _, file := range files {
		img, decodeErr := netpbm.DecodeBytes(file.Data)
		if decodeErr != nil {
			return nil, errors.Wrapf(decodeErr, "decoding %s", file.Path)
		}
		images = append(images, img)
	}

	return images, nil
}

// frameNumber extracts N from a "frame-N.pgm" style name, returning -1 when
// the name does not follow that convention.
func frameNumber(name, ext string) int {
	frame, err := strconv.Atoi(strings.TrimSuffix(strings.ReplaceAll(name, "frame-", ""), ext))
	if err != nil {
		return -1
	}
	return frame
}
