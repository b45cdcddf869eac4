package state

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewFromTokenEmpty(t *testing.T) {
	_, err := NewFromToken("", Options{})
	if !errors.Is(err, ErrNoToken) {
		t.Fatal("unexpected error:", err)
	}
}
