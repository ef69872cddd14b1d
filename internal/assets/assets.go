// Package assets handles the optional decoded images (logo, signature)
// supplied alongside a document record. Absence of an image is a valid,
// expected state everywhere downstream.
package assets

import (
	"fmt"
	"net/http"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
)

// Image is a decoded image buffer ready for embedding. The caller owns the
// underlying bytes; rendering borrows them for a single call.
type Image struct {
	Data []byte
	Ext  extension.Type
}

// Detect sniffs the image format of data and returns an embeddable Image.
// The declared content type is a hint only; the sniffed type wins. Unsupported
// or unrecognizable data returns an error that callers recover from by
// rendering a placeholder instead.
func Detect(data []byte, declaredType string) (*Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}

	sniffed := http.DetectContentType(data)
	switch sniffed {
	case "image/png":
		return &Image{Data: data, Ext: extension.Png}, nil
	case "image/jpeg":
		return &Image{Data: data, Ext: extension.Jpg}, nil
	}

	// Some encoders produce data the sniffer cannot classify; fall back to the
	// declared type before giving up.
	switch declaredType {
	case "image/png":
		return &Image{Data: data, Ext: extension.Png}, nil
	case "image/jpeg", "image/jpg":
		return &Image{Data: data, Ext: extension.Jpg}, nil
	}

	return nil, fmt.Errorf("unsupported image type %q", sniffed)
}
