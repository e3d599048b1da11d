package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByCode(t *testing.T) {
	err := NotFound("Post not found")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))

	wrapped := fmt.Errorf("delete post: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, CodeNotFound, CodeOf(wrapped))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, Code(""), CodeOf(nil))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	assert.Equal(t, CodeValidation, CodeOf(Validation("title", "too short")))
	assert.Equal(t, CodeForbidden, CodeOf(Forbidden("nope")))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "title: too short", Validation("title", "too short").Error())
	assert.Equal(t, "Like not found", NotFound("Like not found").Error())
}
