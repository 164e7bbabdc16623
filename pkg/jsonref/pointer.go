package jsonref

import (
	"errors"
	"fmt"
	"strings"
)

const (
	tokenSeparator = "/"
)

var (
	// ErrInvalidPointer informs that pointer does not follow JSON Pointer syntax
	ErrInvalidPointer = errors.New("invalid JSON Pointer")

	tokenUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
	tokenEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
)

// Tokens splits the pointer into unescaped reference tokens.
// Empty pointer refers to the whole document and has no tokens.
func Tokens(pointer string) ([]string, error) {
	if pointer == "" {
		return []string{}, nil
	}

	if !strings.HasPrefix(pointer, tokenSeparator) {
		return nil, fmt.Errorf("%w: %q does not start with %s", ErrInvalidPointer, pointer, tokenSeparator)
	}

	rawTokens := strings.Split(pointer[len(tokenSeparator):], tokenSeparator)
	tokens := make([]string, 0, len(rawTokens))
	for _, raw := range rawTokens {
		if !validEscapes(raw) {
			return nil, fmt.Errorf("%w: %q has incorrect escape sequence in token %q", ErrInvalidPointer, pointer, raw)
		}

		tokens = append(tokens, tokenUnescaper.Replace(raw))
	}

	return tokens, nil
}

// EscapeToken escapes '~' and '/' so the token can be placed in a pointer
func EscapeToken(token string) string {
	return tokenEscaper.Replace(token)
}

// Pointer builds a JSON Pointer out of unescaped tokens.
func Pointer(tokens ...string) string {
	var b strings.Builder
	for _, token := range tokens {
		b.WriteString(tokenSeparator)
		b.WriteString(EscapeToken(token))
	}

	return b.String()
}

func validEscapes(token string) bool {
	for {
		_, after, found := strings.Cut(token, "~")
		if !found {
			return true
		}

		if after == "" || (after[0] != '0' && after[0] != '1') {
			return false
		}

		token = after[1:]
	}
}
