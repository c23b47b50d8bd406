package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagList_Clean(t *testing.T) {
	tests := []struct {
		name     string
		in       TagList
		expected TagList
	}{
		{"nil", nil, TagList{}},
		{"trims whitespace", TagList{"  go ", "web"}, TagList{"go", "web"}},
		{"drops empties", TagList{"a", "", "   ", "b"}, TagList{"a", "b"}},
		{"preserves order", TagList{"z", "a", "m"}, TagList{"z", "a", "m"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in.Clean())
		})
	}
}

func TestTagList_ValueScan(t *testing.T) {
	v, err := TagList{"go", "fiber"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["go","fiber"]`, v)

	var scanned TagList
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, TagList{"go", "fiber"}, scanned)

	var fromNil TagList
	require.NoError(t, fromNil.Scan(nil))
	assert.Equal(t, TagList{}, fromNil)

	// nil list still serializes as an empty array, never null
	v, err = TagList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestTitleKey(t *testing.T) {
	assert.Equal(t, "hello world", TitleKey("  Hello World "))
	assert.Equal(t, TitleKey("A"), TitleKey("a"))
}

func TestValidPostStatus(t *testing.T) {
	assert.True(t, ValidPostStatus(PostStatusPublished))
	assert.True(t, ValidPostStatus(PostStatusDraft))
	assert.False(t, ValidPostStatus("archived"))
	assert.False(t, ValidPostStatus(""))
}

func TestAppError_StatusCodes(t *testing.T) {
	assert.Equal(t, 404, NewNotFoundError().StatusCode())
	assert.Equal(t, 400, NewInvalidIDError().StatusCode())
	assert.Equal(t, 400, NewDuplicatePostError().StatusCode())
	assert.Equal(t, 400, NewMissingFieldError("x").StatusCode())
	assert.Equal(t, 400, NewValidationError("x").StatusCode())
	assert.Equal(t, 500, NewInternalError("x", assert.AnError).StatusCode())
}
