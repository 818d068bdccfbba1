package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// EncodedImage is an image serialized for transport.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes img as PNG and wraps it in base64.
func EncodePNG(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := img.Bounds()
	return &EncodedImage{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// RGB24MimeType labels a base64 RGB24 buffer.
const RGB24MimeType = "application/x-rgb24"

// EncodeRGB24 packs img as RGB24 and wraps it in base64.
func EncodeRGB24(img *image.NRGBA) *EncodedImage {
	buf := ToRGB24(img)
	return &EncodedImage{
		Width:       buf.Width,
		Height:      buf.Height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Pix),
		MimeType:    RGB24MimeType,
	}
}

// Save writes img to path. The format is chosen from the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
