package ioapi

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(NewError("delete", "a.txt", nil))

	err := NewError("delete", "a.txt", os.ErrPermission)
	assert.Equal("delete a.txt: permission denied", err.Error())
	assert.True(IsAccessDenied(err))
	assert.True(IsSystemError(err))
	assert.False(IsNotExist(err))

	wrapped := errors.Wrap(err, "cleanup")
	assert.True(IsAccessDenied(wrapped))
	assert.True(IsSystemError(wrapped))

	locked := NewError("delete", "b.txt", ErrSharingViolation)
	assert.True(IsSystemError(locked))
	assert.False(IsAccessDenied(locked))
	assert.True(errors.Is(locked, ErrSharingViolation))

	plain := errors.New("unexpected")
	assert.False(IsSystemError(plain))
	assert.False(IsAccessDenied(plain))
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern  string
		name     string
		expected bool
	}{
		{"", "anything", true},
		{"*", "file.txt", true},
		{"*.*", "noext", true},
		{"*.txt", "FILE.TXT", true},
		{"*.txt", "file.log", false},
		{"data?.bin", "data1.bin", true},
		{"data?.bin", "data10.bin", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchPattern(tt.pattern, tt.name))
		})
	}
}

func TestAttributes(t *testing.T) {
	assert := assert.New(t)
	attributes := AttributeReadOnly | AttributeHidden
	assert.True(attributes.Has(AttributeReadOnly))
	assert.True(attributes.Has(AttributeReadOnly | AttributeHidden))
	assert.False(attributes.Has(AttributeDirectory))
}
