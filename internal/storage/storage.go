// Package storage persists uploaded recipe images and builds their public URLs.
package storage

import (
	"context"
	"path"
	"strings"

	"github.com/google/uuid"
)

// RecipeImageDir is the directory every recipe image path lives under.
const RecipeImageDir = "uploads/recipe"

// Storage saves files under a relative path and resolves their public URL.
type Storage interface {
	Save(ctx context.Context, name string, data []byte, contentType string) error
	Delete(ctx context.Context, name string) error
	URL(name string) string
}

// maxExtensionLen keeps generated paths well inside the image column width.
const maxExtensionLen = 10

// ImageExtensions lists the filename extensions accepted for recipe images.
var ImageExtensions = map[string]bool{
	"gif":  true,
	"jpeg": true,
	"jpg":  true,
	"png":  true,
	"webp": true,
}

// RecipeImagePath returns uploads/recipe/<uuid>.<ext> for an uploaded
// filename. The extension is taken from the filename, lower-cased; it is
// dropped when missing, longer than maxExtensionLen or not purely [a-z0-9].
func RecipeImagePath(filename string) string {
	id := uuid.New().String()
	ext := Extension(filename)
	if !safeExtension(ext) {
		return path.Join(RecipeImageDir, id)
	}
	return path.Join(RecipeImageDir, id+"."+ext)
}

// Extension returns the lower-cased text after the last dot of the base
// name, or "" when there is none.
func Extension(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	i := strings.LastIndex(base, ".")
	if i < 0 || i == len(base)-1 {
		return ""
	}
	return strings.ToLower(base[i+1:])
}

func safeExtension(ext string) bool {
	if ext == "" || len(ext) > maxExtensionLen {
		return false
	}
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
