package utils

import (
	"regexp"
	"testing"
)

func TestNewPhotoIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Za-z0-9]{12}$`)
	for i := 0; i < 100; i++ {
		id, err := NewPhotoID()
		if err != nil {
			t.Fatalf("NewPhotoID failed: %v", err)
		}
		if !pattern.MatchString(id) {
			t.Fatalf("id %q does not match expected format", id)
		}
	}
}

func TestNewPhotoIDUniqueness(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id, err := NewPhotoID()
		if err != nil {
			t.Fatalf("NewPhotoID failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q after %d draws", id, i)
		}
		seen[id] = true
	}
}
