package utils

import (
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

// IsValidImageFormat reports whether the filename carries a supported image extension.
func IsValidImageFormat(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

// ResizeImage scales the uploaded image down so it fits within
// maxWidth x maxHeight, preserving aspect ratio. Images already within
// bounds are returned unchanged.
func ResizeImage(file multipart.File, filename string, maxWidth, maxHeight uint) (image.Image, error) {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	img, err := decodeImage(file, filename)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())
	if width <= maxWidth && height <= maxHeight {
		return img, nil
	}

	widthRatio := float64(maxWidth) / float64(width)
	heightRatio := float64(maxHeight) / float64(height)

	var newWidth, newHeight uint
	if widthRatio < heightRatio {
		newWidth = maxWidth
		newHeight = uint(float64(height) * widthRatio)
	} else {
		newWidth = uint(float64(width) * heightRatio)
		newHeight = maxHeight
	}

	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3), nil
}

// GenerateThumbnail produces the listing-card thumbnail for an uploaded image.
func GenerateThumbnail(file multipart.File, filename string) (image.Image, error) {
	return ResizeImage(file, filename, ThumbnailWidth, ThumbnailHeight)
}

func decodeImage(file multipart.File, filename string) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(file)
	case ".png":
		return png.Decode(file)
	default:
		img, _, err := image.Decode(file)
		return img, err
	}
}

func EncodeImage(img image.Image, format string, writer io.Writer, quality int) error {
	switch strings.ToLower(format) {
	case "jpg", "jpeg":
		return jpeg.Encode(writer, img, &jpeg.Options{Quality: quality})
	case "png":
		return png.Encode(writer, img)
	default:
		return errors.New("unsupported image format")
	}
}
