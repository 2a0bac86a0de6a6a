package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Harish050696/cardvault/internal/model"
)

var _ Extractor = (*Tesseract)(nil)

// Tesseract implements Extractor on top of the gosseract client. The client
// wraps a native Tesseract handle that is expensive to construct, so it is
// created lazily on first use and kept for the process lifetime.
type Tesseract struct {
	languages []string

	once    sync.Once
	client  *gosseract.Client
	initErr error
}

// NewTesseract creates an extractor for the given language hints. With no
// hints, recognition runs with English trained data.
func NewTesseract(languages ...string) *Tesseract {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &Tesseract{languages: languages}
}

func (t *Tesseract) reader() (*gosseract.Client, error) {
	t.once.Do(func() {
		client := gosseract.NewClient()
		if err := client.SetLanguage(t.languages...); err != nil {
			t.initErr = fmt.Errorf("failed to set languages: %w", err)
			_ = client.Close()
			return
		}
		t.client = client
	})

	if t.initErr != nil {
		return nil, t.initErr
	}
	return t.client, nil
}

// Close releases the native client if it was ever constructed.
func (t *Tesseract) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}

// Extract normalizes the upload to PNG, recognizes text over the normalized
// pixels and joins the recognized fragments with single spaces. Decode and
// recognition failures both surface as model.ErrExtractionFailed.
func (t *Tesseract) Extract(ctx context.Context, imageBytes []byte) (string, []byte, error) {
	normalized, err := NormalizePNG(imageBytes)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", model.ErrExtractionFailed, err)
	}

	select {
	case <-ctx.Done():
		return "", nil, ctx.Err()
	default:
	}

	client, err := t.reader()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", model.ErrExtractionFailed, err)
	}

	if err := client.SetImageFromBytes(normalized); err != nil {
		return "", nil, fmt.Errorf("%w: set image: %v", model.ErrExtractionFailed, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", nil, fmt.Errorf("%w: recognize text: %v", model.ErrExtractionFailed, err)
	}

	return JoinFragments(text), normalized, nil
}

// NormalizePNG decodes any supported upload format (PNG, JPEG, GIF, BMP,
// TIFF, WebP) and re-encodes the pixels as PNG, giving every stored image a
// single canonical byte representation.
func NormalizePNG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	return buf.Bytes(), nil
}

// JoinFragments collapses recognizer output into a single line with the
// fragments separated by single spaces, preserving reading order.
func JoinFragments(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
