package textures

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is tightly described RGB pixel data ready for glTexImage2D.
// Rows are stored bottom-up and padded to a 4-byte stride, which matches
// GL's default unpack alignment.
type Image struct {
	Width  int
	Height int
	Stride int
	Pix    []byte
}

// AlignedStride returns the row size in bytes of an RGB row padded to 4
func AlignedStride(width int) int {
	return (width*3 + 3) &^ 3
}

// Load decodes a texture file. Any format registered with the image
// package works: JPEG, PNG, TGA, BMP, TIFF and WebP.
// If maxSize > 0 the image is downscaled to fit in maxSize x maxSize.
func Load(path string, maxSize int) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return FromImage(img, maxSize), nil
}

// FromImage converts a decoded image to the upload layout
func FromImage(src image.Image, maxSize int) *Image {
	src = fit(src, maxSize)

	b := src.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	w, h := b.Dx(), b.Dy()
	out := &Image{
		Width:  w,
		Height: h,
		Stride: AlignedStride(w),
	}
	out.Pix = make([]byte, out.Stride*h)

	// Write rows bottom-up: GL puts texel row 0 at v = 0.
	for y := 0; y < h; y++ {
		srcRow := rgba.Pix[y*rgba.Stride:]
		dstRow := out.Pix[(h-1-y)*out.Stride:]
		for x := 0; x < w; x++ {
			copy(dstRow[x*3:x*3+3], srcRow[x*4:x*4+3])
		}
	}
	return out
}

// fit scales src down so neither side exceeds maxSize, keeping the
// aspect ratio
func fit(src image.Image, maxSize int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return src
	}

	nw, nh := maxSize, maxSize
	if w > h {
		nh = max(1, h*maxSize/w)
	} else {
		nw = max(1, w*maxSize/h)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Placeholder is a 1x1 grey texture used when a file cannot be loaded
func Placeholder() *Image {
	return &Image{Width: 1, Height: 1, Stride: 4, Pix: []byte{128, 128, 128, 0}}
}

// FlipRows reverses the row order of pix in place
func FlipRows(pix []byte, stride, height int) {
	tmp := make([]byte, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
