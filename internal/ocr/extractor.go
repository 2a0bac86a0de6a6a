package ocr

import "context"

// Extractor turns an uploaded image into recognized text plus the canonical
// PNG rendition that gets stored alongside it.
type Extractor interface {
	Extract(ctx context.Context, image []byte) (text string, normalized []byte, err error)
}
