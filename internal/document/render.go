// Package document rasterises document payloads so they can be sent to a
// vision model as a single image.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"image/jpeg"

	"github.com/gen2brain/go-fitz"
)

var ErrEmptyDocument = errors.New("document has no pages")

type Renderer struct {
	dpi     float64
	quality int
}

func NewRenderer(dpi float64) *Renderer {
	if dpi <= 0 {
		dpi = 110
	}
	return &Renderer{dpi: dpi, quality: 85}
}

func (r *Renderer) FirstPageJPEG(data []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, ErrEmptyDocument
	}

	img, err := doc.ImageDPI(0, r.dpi)
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: r.quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
