package redis

import (
	"testing"

	"github.com/pkg/errors"
)

// The token getters wrap cmd.Err() with context, so a missing key comes back
// as a wrapped Nil that is no longer pointer-equal to the sentinel. IsNil has
// to see through the wrapping, otherwise a logged-out user reads as a redis
// failure on every authenticated request.
func TestIsNilMatchesWrappedMiss(t *testing.T) {
	err := errors.Wrap(Nil, "get access_token")

	if err == Nil {
		t.Fatal("wrapped miss should not be pointer-equal to Nil")
	}
	if !IsNil(err) {
		t.Error("IsNil should match a wrapped miss")
	}
}

func TestIsNilRejectsOtherErrors(t *testing.T) {
	if IsNil(errors.New("connection refused")) {
		t.Error("IsNil should not match a real failure")
	}
	if IsNil(nil) {
		t.Error("IsNil should not match nil")
	}
}
