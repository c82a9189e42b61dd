// Package dataurl parses the inline image payloads the UI submits:
// base64 data URLs limited to the image subtypes the catalogue accepts.
package dataurl

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageBytes is the ceiling on the decoded image size.
const MaxImageBytes = 40 << 20

var extByMediaType = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// Image is a decoded inline image payload.
type Image struct {
	MediaType string
	Ext       string
	Data      []byte
}

// DataURL re-encodes the image as a data URL, for providers that take
// image references in URL form.
func (i *Image) DataURL() string {
	return "data:" + i.MediaType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// Parse validates and decodes a data URL of the form
// "data:image/<subtype>;base64,<payload>". It accepts only PNG, JPEG, GIF
// and WebP, enforces the decoded size ceiling, and verifies that the decoded
// bytes actually sniff to the declared media type.
func Parse(s string) (*Image, error) {
	if !strings.HasPrefix(s, "data:") {
		return nil, fmt.Errorf("image: missing data URL prefix")
	}
	rest := strings.TrimPrefix(s, "data:")

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("image: malformed data URL")
	}

	mediaType, found := strings.CutSuffix(meta, ";base64")
	if !found {
		return nil, fmt.Errorf("image: only base64 data URLs are accepted")
	}

	ext, supported := extByMediaType[mediaType]
	if !supported {
		return nil, fmt.Errorf("image: unsupported media type %q (want PNG, JPEG, GIF or WebP)", mediaType)
	}

	// Cheap pre-check on the encoded length before decoding anything.
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageBytes+3 {
		return nil, fmt.Errorf("image: exceeds %dMB ceiling", MaxImageBytes>>20)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("image: invalid base64 payload")
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("image: exceeds %dMB ceiling", MaxImageBytes>>20)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image: empty payload")
	}

	if detected := mimetype.Detect(data).String(); !strings.HasPrefix(detected, mediaType) {
		return nil, fmt.Errorf("image: payload does not match declared type %s", mediaType)
	}

	return &Image{MediaType: mediaType, Ext: ext, Data: data}, nil
}
