// Package qrdecode wraps the external QR symbol decoder.
package qrdecode

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// Decoder recognizes a QR symbol in a two-level raster image and returns
// its payload. The implementation is a black box to the pipeline.
type Decoder interface {
	Decode(img image.Image) (string, error)
}

type reader struct {
	qr gozxing.Reader
}

// NewReader returns the gozxing-backed Decoder. Constructing it up front
// doubles as the availability check before any pipeline work starts.
func NewReader() Decoder {
	return &reader{qr: qrcode.NewQRCodeReader()}
}

func (r *reader) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("binarizing image: %w", err)
	}
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	result, err := r.qr.Decode(bmp, hints)
	if err != nil {
		return "", fmt.Errorf("no QR symbol in image: %w", err)
	}
	return result.GetText(), nil
}
