package jsonref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name    string
		pointer string
		want    []string
	}{
		{name: "document root", pointer: "", want: []string{}},
		{name: "empty key", pointer: "/", want: []string{""}},
		{name: "components", pointer: "/components/schemas/User", want: []string{"components", "schemas", "User"}},
		{name: "escaped slash", pointer: "/paths/~1users~1{id}", want: []string{"paths", "/users/{id}"}},
		{name: "escaped tilde", pointer: "/a~0b", want: []string{"a~b"}},
		{name: "unescape order", pointer: "/~01", want: []string{"~1"}},
		{name: "hash is plain content", pointer: "/a#b", want: []string{"a#b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokens(tt.pointer)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokensInvalid(t *testing.T) {
	for _, pointer := range []string{"components/schemas", "/a~", "/a~2b", "/ok/~x"} {
		_, err := Tokens(pointer)
		assert.ErrorIs(t, err, ErrInvalidPointer, pointer)
	}
}

func TestPointer(t *testing.T) {
	assert.Equal(t, "", Pointer())
	assert.Equal(t, "/paths/~1users~1{id}/get", Pointer("paths", "/users/{id}", "get"))
	assert.Equal(t, "/a~0b", Pointer("a~b"))

	tokens, err := Tokens(Pointer("x/y", "~z", ""))
	require.NoError(t, err)
	assert.Equal(t, []string{"x/y", "~z", ""}, tokens)
}

func TestEscapeToken(t *testing.T) {
	assert.Equal(t, "~0~1", EscapeToken("~/"))
	assert.Equal(t, "plain", EscapeToken("plain"))
}
