package fileextract_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"chatbot-api/internal/fileextract"
)

// encodePNG renders a solid test image of the given size.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

// decodeResult decodes the base64 payload produced by the extractor.
func decodeResult(t *testing.T, out fileextract.FileContext) image.Image {
	t.Helper()
	if out.Image == nil {
		t.Fatalf("expected image payload, got none (text: %q)", out.Text)
	}
	raw, err := base64.StdEncoding.DecodeString(out.Image.Data)
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("payload is not a decodable image: %v", err)
	}
	return img
}

func TestImageResize(t *testing.T) {
	ex := fileextract.New(1024)

	t.Run("Large Landscape Downsized", func(t *testing.T) {
		out := ex.Extract(fileextract.FileArtifact{
			Filename: "big.png",
			MimeType: fileextract.MediaTypePNG,
			Payload:  encodePNG(t, 2048, 1024),
		})

		img := decodeResult(t, out)
		b := img.Bounds()
		if b.Dx() > 1024 || b.Dy() > 1024 {
			t.Errorf("expected max dimension <= 1024, got %dx%d", b.Dx(), b.Dy())
		}
		// 2:1 aspect ratio within rounding
		if b.Dx() != 1024 || b.Dy() != 512 {
			t.Errorf("expected 1024x512, got %dx%d", b.Dx(), b.Dy())
		}
	})

	t.Run("Large Portrait Downsized", func(t *testing.T) {
		out := ex.Extract(fileextract.FileArtifact{
			Filename: "tall.png",
			MimeType: fileextract.MediaTypePNG,
			Payload:  encodePNG(t, 1200, 2400),
		})

		img := decodeResult(t, out)
		b := img.Bounds()
		if b.Dy() != 1024 || b.Dx() != 512 {
			t.Errorf("expected 512x1024, got %dx%d", b.Dx(), b.Dy())
		}
	})

	t.Run("Small Image Untouched", func(t *testing.T) {
		out := ex.Extract(fileextract.FileArtifact{
			Filename: "small.png",
			MimeType: fileextract.MediaTypePNG,
			Payload:  encodePNG(t, 320, 200),
		})

		img := decodeResult(t, out)
		b := img.Bounds()
		if b.Dx() != 320 || b.Dy() != 200 {
			t.Errorf("expected 320x200 unchanged, got %dx%d", b.Dx(), b.Dy())
		}
	})

	t.Run("JPEG Stays JPEG", func(t *testing.T) {
		out := ex.Extract(fileextract.FileArtifact{
			Filename: "photo.jpg",
			MimeType: fileextract.MediaTypeJPEG,
			Payload:  encodeJPEG(t, 1500, 900),
		})
		if out.Image == nil {
			t.Fatalf("expected image payload")
		}
		if out.Image.MimeType != "image/jpeg" {
			t.Errorf("expected image/jpeg, got %q", out.Image.MimeType)
		}
	})

	t.Run("Placeholder Mentions Filename", func(t *testing.T) {
		out := ex.Extract(fileextract.FileArtifact{
			Filename: "photo.jpg",
			MimeType: fileextract.MediaTypeJPEG,
			Payload:  encodeJPEG(t, 64, 64),
		})
		if out.Text == "" || out.Filename != "photo.jpg" {
			t.Errorf("expected placeholder text and filename, got %+v", out)
		}
	})
}
