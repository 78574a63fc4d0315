package domain

import (
	"encoding/base64"
	"errors"
	"strings"
)

var (
	ErrImageMissing     = errors.New("image is required")
	ErrImageNotDataURI  = errors.New("image must be a base64 data URI")
	ErrImageUnsupported = errors.New("unsupported image type")
)

// supportedImageTypes are the media types the vision endpoint accepts.
var supportedImageTypes = map[string]string{
	"image/jpeg": "image/jpeg",
	"image/jpg":  "image/jpeg",
	"image/png":  "image/png",
	"image/gif":  "image/gif",
	"image/webp": "image/webp",
}

// MealImage is a decoded "data:<type>;base64,<payload>" URI.
type MealImage struct {
	MediaType string
	// Data is the base64 payload, still encoded and always padded.
	Data string
	// URI is the original data URI, kept as the entry's image reference.
	URI string
}

// ParseMealImage validates an image data URI and splits it into its parts.
func ParseMealImage(uri string) (MealImage, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return MealImage{}, ErrImageMissing
	}

	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return MealImage{}, ErrImageNotDataURI
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return MealImage{}, ErrImageNotDataURI
	}
	mediaType, encoding, ok := strings.Cut(header, ";")
	if !ok || !strings.EqualFold(encoding, "base64") {
		return MealImage{}, ErrImageNotDataURI
	}

	canonical, ok := supportedImageTypes[strings.ToLower(mediaType)]
	if !ok {
		return MealImage{}, ErrImageUnsupported
	}

	if payload == "" {
		return MealImage{}, ErrImageMissing
	}
	data, ok := paddedBase64(payload)
	if !ok {
		return MealImage{}, ErrImageNotDataURI
	}

	return MealImage{MediaType: canonical, Data: data, URI: uri}, nil
}

// paddedBase64 accepts a standard base64 payload with or without trailing
// padding and returns it padded.
func paddedBase64(payload string) (string, bool) {
	if _, err := base64.StdEncoding.DecodeString(payload); err == nil {
		return payload, true
	}

	raw := strings.TrimRight(payload, "=")
	if raw == "" {
		return "", false
	}
	if _, err := base64.RawStdEncoding.DecodeString(raw); err != nil {
		return "", false
	}
	if n := len(raw) % 4; n != 0 {
		raw += strings.Repeat("=", 4-n)
	}
	return raw, true
}
