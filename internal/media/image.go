package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/barberconnect/barberconnect-api/internal/httperr"
)

const (
	maxEdge     = 1280
	webpQuality = 80
)

// ProcessPhoto decodes an uploaded jpeg/png/webp image, scales it down to
// maxEdge when larger, and re-encodes it as lossy webp.
func ProcessPhoto(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		// webp does not register with image.Decode
		img, err = webp.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, httperr.ErrBusiness("unsupported_image")
		}
	}

	img = shrink(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func shrink(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return img
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
