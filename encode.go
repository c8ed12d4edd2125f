package vivid

import (
	"bytes"
	"encoding/base64"
	"image/png"

	"golang.org/x/image/bmp"
)

// EncodePNG returns the artwork's surface as a PNG byte stream.
func (a *Artwork) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, a.Surface.ToImage()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeBMP returns the artwork's surface as an uncompressed BMP byte
// stream.
func (a *Artwork) EncodeBMP() ([]byte, error) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, a.Surface.ToImage()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURI returns the artwork as a base64 PNG data URI, the shape handed to
// gallery front ends.
func (a *Artwork) DataURI() (string, error) {
	data, err := a.EncodePNG()
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}
