package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // GIF decode support
	_ "image/jpeg" // JPEG decode support
	_ "image/png"  // PNG decode support
	"io"

	_ "golang.org/x/image/webp" // WebP decode support

	"recipe-be/internal/common"
)

// ContentTypes maps decoded image formats to their MIME types.
var ContentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// ReadImage reads at most maxBytes from r and checks that the payload is an
// image in one of the supported formats. It returns the data and the format
// name reported by the decoder.
func ReadImage(r io.Reader, maxBytes int64) ([]byte, string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("reading file: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, "", common.ErrorFileTooLarge
	}

	format, err := DetectImage(data)
	if err != nil {
		return nil, "", err
	}
	return data, format, nil
}

// DetectImage decodes the image header and returns the format name.
func DetectImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", common.ErrorInvalidImage
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", common.ErrorInvalidImage
	}
	if _, ok := ContentTypes[format]; !ok {
		return "", common.ErrorInvalidImage
	}
	return format, nil
}
