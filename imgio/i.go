package imgio

import "image"

// Reader loads images from the filesystem. Color results are always RGBA
// at this boundary, whatever the codec's native channel order is.
type Reader interface {
	ReadColor(name string) (*image.RGBA, error)
	ReadGrayscale(name string) (*image.Gray, error)
}
