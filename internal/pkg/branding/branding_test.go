package branding

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestScaleFactor(t *testing.T) {
	assert.InDelta(t, 0.49, ScaleFactor(200, 100, DetailBox, 0), 0.0001)
	assert.InDelta(t, 0.3475, ScaleFactor(400, 100, DetailBox, 0), 0.0001)
	assert.InDelta(t, 0.64*1.3, ScaleFactor(100, 100, SummaryBox, 10), 0.0001)
	assert.Equal(t, float64(0), ScaleFactor(0, 10, DetailBox, 0))
}

func TestFetchAndEmbed(t *testing.T) {
	logo := encodePNG(t, 278, 98)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(logo)
	}))
	defer srv.Close()

	img, err := NewInjector(time.Second).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 278, img.Bounds().Dx())

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, Embed(f, img, Placement{Sheet: "Sheet1", Cell: "A1", Box: DetailBox}))

	pics, err := f.GetPictures("Sheet1", "A1")
	require.NoError(t, err)
	require.Len(t, pics, 1)

	cfg, err := png.DecodeConfig(bytes.NewReader(pics[0].File))
	require.NoError(t, err)
	assert.Equal(t, 139, cfg.Width)
	assert.Equal(t, 49, cfg.Height)
}

func TestFetch_Failures(t *testing.T) {
	notFound := httptest.NewServer(http.NotFoundHandler())
	defer notFound.Close()
	garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not an image"))
	}))
	defer garbage.Close()

	injector := NewInjector(time.Second)

	_, err := injector.Fetch(context.Background(), notFound.URL)
	assert.ErrorIs(t, err, ErrLogoFetch)

	_, err = injector.Fetch(context.Background(), garbage.URL)
	assert.ErrorIs(t, err, ErrLogoFetch)
}
