package ioutils

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration, used by i.ytimg.com
)

// coverQuality is the JPEG quality of generated cover art.
const coverQuality = 90

// ImageService turns video thumbnails into cover art.
//
// YouTube serves thumbnails as JPEG or WebP in 16:9. ID3 front covers are
// expected to be JPEG and are usually displayed square, so the service
// can crop the centre square before scaling.
//
// Example usage:
//
//	svc := NewImageService()
//
//	thumb, _ := client.DownloadBytes(ctx, video.ThumbnailURL)
//	cover, err := svc.CoverArt(ctx, thumb, 500, true)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// CoverArt decodes a thumbnail, optionally crops it to its centre square,
// scales it down to fit within maxSize x maxSize and encodes it as JPEG.
//
// Images are never scaled up. A non-positive maxSize keeps the size.
func (s *ImageService) CoverArt(ctx context.Context, data []byte, maxSize int, square bool) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding thumbnail: %w", err)
	}

	if square {
		img = cropSquare(img)
	}
	if maxSize > 0 {
		img = fit(img, maxSize, maxSize)
	} else if format == "jpeg" && !square {
		return data, nil
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: coverQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fit scales img down to fit within maxWidth x maxHeight, keeping the
// aspect ratio. Catmull-Rom is used for the scaling.
func fit(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxWidth && height <= maxHeight {
		return img
	}

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		width, height = int(float64(maxHeight)*ratio), maxHeight
	} else {
		width, height = maxWidth, int(float64(maxWidth)/ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// cropSquare returns the largest centred square of img.
func cropSquare(img image.Image) image.Image {
	bounds := img.Bounds()
	side := min(bounds.Dx(), bounds.Dy())
	x0 := bounds.Min.X + (bounds.Dx()-side)/2
	y0 := bounds.Min.Y + (bounds.Dy()-side)/2

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Copy(dst, image.Point{}, img, image.Rect(x0, y0, x0+side, y0+side), draw.Src, nil)
	return dst
}
