package imgio

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/gift"
	"github.com/sgostarter/libeasygo/cuserror"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func NewReader() Reader {
	return &fsReaderImpl{}
}

type fsReaderImpl struct {
}

func (impl *fsReaderImpl) ReadColor(name string) (*image.RGBA, error) {
	img, err := decodeFile(name)
	if err != nil {
		return nil, err
	}

	return ToRGBA(img), nil
}

func (impl *fsReaderImpl) ReadGrayscale(name string) (*image.Gray, error) {
	img, err := decodeFile(name)
	if err != nil {
		return nil, err
	}

	return ToGray(img), nil
}

func WriteColor(name string, img image.Image) error {
	if img == nil {
		return cuserror.NewWithErrorMsg("no image")
	}

	return encodeFile(name, ToRGBA(img))
}

func WriteGrayscale(name string, img image.Image) error {
	if img == nil {
		return cuserror.NewWithErrorMsg("no image")
	}

	return encodeFile(name, ToGray(img))
}

// ToRGBA normalizes any decoded image to RGBA channel order.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}

	b := img.Bounds()

	dst := image.NewRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)

	return dst
}

func ToGray(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok {
		return gray
	}

	g := gift.New(gift.Grayscale())

	dst := image.NewGray(g.Bounds(img.Bounds()))
	g.Draw(dst, img)

	return dst
}

func decodeFile(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	img, _, err := image.Decode(f)

	return img, err
}

func encodeFile(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	err = encode(f, filepath.Ext(name), img)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

func encode(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, nil)
	}

	return cuserror.NewWithErrorMsg("unsupported image format: " + ext)
}
