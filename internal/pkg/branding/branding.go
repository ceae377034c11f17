// Package branding downloads the report logo and embeds it into workbook sheets.
package branding

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // gif decoding
	_ "image/jpeg" // jpeg decoding
	"image/png"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // webp decoding
)

const (
	maxLogoBytes = 10 << 20
	// offsetEnlargement applies when the logo is pushed right of its anchor cell.
	offsetEnlargement = 1.3
)

var ErrLogoFetch = errors.New("failed to fetch logo")

// Box is the bounding box, in pixels, a logo is fitted into.
type Box struct {
	Width  int
	Height int
}

var (
	DetailBox  = Box{Width: 139, Height: 49}
	SummaryBox = Box{Width: 173, Height: 64}
)

// Placement anchors a logo at a cell of a sheet.
type Placement struct {
	Sheet   string
	Cell    string
	Box     Box
	OffsetX int
	OffsetY int
}

type Injector struct {
	client *http.Client
}

func NewInjector(timeout time.Duration) *Injector {
	return &Injector{client: &http.Client{Timeout: timeout}}
}

// Fetch downloads and decodes the image at url.
func (i *Injector) Fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogoFetch, err)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogoFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrLogoFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogoFetch, err)
	}

	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrLogoFetch, err)
	}
	return img, nil
}

// ScaleFactor fits a width x height image into box keeping its aspect ratio.
// A positive offsetX enlarges the result by 1.3.
func ScaleFactor(width, height int, box Box, offsetX int) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	scale := math.Min(float64(box.Width)/float64(width), float64(box.Height)/float64(height))
	if offsetX > 0 {
		scale *= offsetEnlargement
	}
	return scale
}

// Embed scales img for p.Box and places it at p.Cell.
func Embed(f *excelize.File, img image.Image, p Placement) error {
	bounds := img.Bounds()
	scale := ScaleFactor(bounds.Dx(), bounds.Dy(), p.Box, p.OffsetX)
	if scale == 0 {
		return fmt.Errorf("logo has no pixels")
	}

	width := int(math.Round(float64(bounds.Dx()) * scale))
	height := int(math.Round(float64(bounds.Dy()) * scale))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, dst); err != nil {
		return fmt.Errorf("failed to encode logo: %w", err)
	}

	err := f.AddPictureFromBytes(p.Sheet, p.Cell, &excelize.Picture{
		Extension: ".png",
		File:      encoded.Bytes(),
		Format: &excelize.GraphicOptions{
			OffsetX:     p.OffsetX,
			OffsetY:     p.OffsetY,
			Positioning: "oneCell",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to embed logo in %s!%s: %w", p.Sheet, p.Cell, err)
	}
	return nil
}
