package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidLayout, "unknown layout %q", "modern-9"),
			want: `INVALID_LAYOUT: unknown layout "modern-9"`,
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeIO, errors.New("disk full"), "write %s", "out.pdf"),
			want: "IO: write out.pdf: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(ErrCodeRender, nil, "nothing happened"))
}

func TestIsWalksChain(t *testing.T) {
	inner := New(ErrCodeResource, "profile image unreadable")
	outer := Wrap(ErrCodeRender, fmt.Errorf("header: %w", inner), "render failed")

	assert.True(t, Is(outer, ErrCodeRender))
	assert.True(t, Is(outer, ErrCodeResource))
	assert.False(t, Is(outer, ErrCodeIO))
	assert.False(t, Is(errors.New("plain"), ErrCodeIO))
}

func TestGetCode(t *testing.T) {
	err := fmt.Errorf("context: %w", New(ErrCodeInvalidInput, "bad"))
	assert.Equal(t, ErrCodeInvalidInput, GetCode(err))
	assert.Equal(t, Code(""), GetCode(errors.New("plain")))

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "bad", e.Message)
}
