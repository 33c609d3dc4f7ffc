package fileextract

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

const jpegQuality = 85

// extractImage decodes, resizes and re-encodes an uploaded image.
// Decode failure degrades to an error string, same as PDFs.
func (e *Extractor) extractImage(artifact FileArtifact) FileContext {
	src, format, err := image.Decode(bytes.NewReader(artifact.Payload))
	if err != nil {
		return FileContext{
			Filename: artifact.Filename,
			Text:     fmt.Sprintf("[Erreur lors du traitement de l'image %s : %v]", artifact.Filename, err),
		}
	}

	resized := e.resize(src)

	var buf bytes.Buffer
	mimeType := "image/png"
	switch format {
	case "jpeg":
		mimeType = "image/jpeg"
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality})
	default:
		err = png.Encode(&buf, resized)
	}
	if err != nil {
		return FileContext{
			Filename: artifact.Filename,
			Text:     fmt.Sprintf("[Erreur lors du traitement de l'image %s : %v]", artifact.Filename, err),
		}
	}

	return FileContext{
		Filename: artifact.Filename,
		Text:     fmt.Sprintf("[Image jointe : %s, transmise au modèle pour analyse]", artifact.Filename),
		Image: &EncodedImage{
			Data:     base64.StdEncoding.EncodeToString(buf.Bytes()),
			MimeType: mimeType,
		},
	}
}

// resize scales the image so neither dimension exceeds the configured
// maximum, preserving aspect ratio. Images already inside the bound
// are returned untouched.
func (e *Extractor) resize(src image.Image) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	max := e.maxImageDimension
	if w <= max && h <= max {
		return src
	}

	var newW, newH int
	if w >= h {
		newW = max
		newH = h * max / w
	} else {
		newH = max
		newW = w * max / h
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
