package utils

import (
	"crypto/rand"
	"fmt"
)

const photoIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// PhotoIDLength matches the width of the photos.id column.
const PhotoIDLength = 12

// NewPhotoID returns a random identifier that doubles as the object name in
// storage (minus extension). A collision surfaces as a primary key violation
// on insert and goes through the normal compensation path.
func NewPhotoID() (string, error) {
	buf := make([]byte, PhotoIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate photo id: %w", err)
	}
	for i, b := range buf {
		buf[i] = photoIDAlphabet[int(b)%len(photoIDAlphabet)]
	}
	return string(buf), nil
}
