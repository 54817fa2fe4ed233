package chronicles

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"sync"

	"golang.org/x/image/draw"
)

// Social card size used by OpenGraph and Twitter large image previews.
const (
	previewWidth  = 1200
	previewHeight = 630
)

// previewImage lazily loads the authored preview image and normalizes it
// to the social card size. The result, including a load error, is kept
// for the life of the process.
type previewImage struct {
	path string

	once sync.Once
	data []byte
	err  error
}

func newPreviewImage(path string) *previewImage {
	return &previewImage{path: path}
}

func (p *previewImage) load() ([]byte, error) {
	p.once.Do(func() {
		f, err := os.Open(p.path)
		if err != nil {
			p.err = err
			return
		}
		defer f.Close()
		p.data, p.err = processPreview(f)
	})
	return p.data, p.err
}

// processPreview decodes an image, crops it to the card aspect ratio around
// its center, scales it to previewWidth x previewHeight and encodes PNG.
func processPreview(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	crop := coverRect(img.Bounds(), previewWidth, previewHeight)
	dst := image.NewRGBA(image.Rect(0, 0, previewWidth, previewHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// coverRect returns the largest centered sub-rectangle of b with aspect w:h.
func coverRect(b image.Rectangle, w, h int) image.Rectangle {
	bw, bh := b.Dx(), b.Dy()
	if bw*h > bh*w {
		cw := bh * w / h
		x0 := b.Min.X + (bw-cw)/2
		return image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	}
	ch := bw * h / w
	y0 := b.Min.Y + (bh-ch)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
}
