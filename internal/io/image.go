package ioutils

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration
	"os"

	"golang.org/x/image/draw"
)

// ImageService prepares cover art for embedding in MP3 files.
//
// Every method returns JPEG bytes, which is what the ID3 tagger expects.
type ImageService struct {
	// Quality is the JPEG encoding quality (1-100).
	Quality int
}

// NewImageService creates a new ImageService encoding at quality 90.
func NewImageService() *ImageService {
	return &ImageService{Quality: 90}
}

// LoadCover reads an image file and returns it as JPEG.
//
// If maxSize is positive the image is scaled down to fit a maxSize x maxSize
// box first.
func (s *ImageService) LoadCover(ctx context.Context, path string, maxSize int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cover art: %w", err)
	}

	if maxSize > 0 {
		return s.ResizeImage(ctx, data, maxSize, maxSize)
	}
	return s.ConvertToJPEG(ctx, data)
}

// ResizeImage resizes an image to fit within the specified maximum dimensions.
//
// The aspect ratio is preserved and images already inside the box keep their
// size. The result is always JPEG-encoded. Catmull-Rom is used for scaling.
//
// Example:
//
//	// A 1500x1000 image becomes 1000x666
//	resized, err := svc.ResizeImage(ctx, imageData, 1000, 1000)
func (s *ImageService) ResizeImage(ctx context.Context, data []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, err := decode(ctx, data)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := fitWithin(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return s.encode(dst)
}

// ConvertToJPEG re-encodes an image (JPEG, PNG) as JPEG.
func (s *ImageService) ConvertToJPEG(ctx context.Context, data []byte) ([]byte, error) {
	img, err := decode(ctx, data)
	if err != nil {
		return nil, err
	}
	return s.encode(img)
}

func (s *ImageService) encode(img image.Image) ([]byte, error) {
	quality := s.Quality
	if quality <= 0 || quality > 100 {
		quality = 90
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(ctx context.Context, data []byte) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// fitWithin scales width x height down to fit maxWidth x maxHeight,
// preserving the aspect ratio.
func fitWithin(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		// Height is the limiting factor
		return int(float64(maxHeight) * ratio), maxHeight
	}
	return maxWidth, int(float64(maxWidth) / ratio)
}
