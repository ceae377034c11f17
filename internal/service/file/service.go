package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // jpeg decoding
	"image/png"
	"io"
	"path"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/systemsetting"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // webp decoding
)

const (
	maxLogoBytes = 5 << 20
	maxLogoWidth = 512
)

type FileService interface {
	// UploadLogo normalizes an uploaded logo to PNG and returns its public URL.
	UploadLogo(ctx context.Context, file io.Reader) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadLogo implements FileService. Images wider than 512px are downscaled.
func (s *fileServiceImpl) UploadLogo(ctx context.Context, file io.Reader) (string, error) {
	buffer, err := io.ReadAll(io.LimitReader(file, maxLogoBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read logo: %w", err)
	}
	if len(buffer) > maxLogoBytes {
		return "", systemsetting.ErrLogoTooLarge
	}

	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return "", systemsetting.ErrUnsupportedLogoFormat
		}
		return "", fmt.Errorf("%w: %v", systemsetting.ErrUnsupportedLogoFormat, err)
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, limitWidth(img, maxLogoWidth)); err != nil {
		return "", fmt.Errorf("failed to encode logo: %w", err)
	}

	stored, err := s.storage.Upload(ctx, &encoded, path.Join("logos", uuid.NewString()+".png"), "image/png")
	if err != nil {
		return "", fmt.Errorf("failed to upload logo: %w", err)
	}

	return s.storage.URL(stored), nil
}

// limitWidth scales img down, keeping its aspect ratio, so it is at most maxWidth wide.
func limitWidth(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth {
		return img
	}

	height := bounds.Dy() * maxWidth / bounds.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
