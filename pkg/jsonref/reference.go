// Package jsonref splits JSON References ("$ref" values) into the document identifier and the JSON Pointer fragment.
package jsonref

import (
	"errors"
	"fmt"
	"strings"
)

const (
	fragmentSeparator = "#"
)

var (
	// ErrMissingPointer informs that reference has no fragment separator and therefore no JSON Pointer, not even an empty one
	ErrMissingPointer = errors.New("reference does not contain a JSON Pointer")
)

// Reference holds both parts of a JSON Reference.
// HasURI is false for references relative to the current document, HasPointer is false when there is no fragment at all.
type Reference struct {
	URI        string
	HasURI     bool
	Pointer    string
	HasPointer bool
}

// ExtractURI returns the document identifier of the reference.
// ok is false when the reference starts with '#', meaning it points into the document currently being processed.
// A reference without '#' is treated as a URI as a whole.
func ExtractURI(ref string) (uri string, ok bool) {
	idx := strings.Index(ref, fragmentSeparator)
	switch {
	case idx == 0:
		return "", false
	case idx > 0:
		return ref[:idx], true
	default:
		return ref, true
	}
}

// ExtractPointer returns everything after the first '#' of the reference, which may be an empty string.
// Reference without '#' results in ErrMissingPointer.
func ExtractPointer(ref string) (string, error) {
	idx := strings.Index(ref, fragmentSeparator)
	if idx < 0 {
		return "", fmt.Errorf("%w: %q", ErrMissingPointer, ref)
	}

	return ref[idx+len(fragmentSeparator):], nil
}

// Split returns both parts of the reference
func Split(ref string) Reference {
	uri, hasURI := ExtractURI(ref)
	pointer, err := ExtractPointer(ref)

	return Reference{
		URI:        uri,
		HasURI:     hasURI,
		Pointer:    pointer,
		HasPointer: err == nil,
	}
}

// IsLocal reports whether the reference points into the current document.
func IsLocal(ref string) bool {
	_, ok := ExtractURI(ref)
	return !ok
}

// Join builds a reference from the uri and pointer. Empty uri results in local reference.
func Join(uri, pointer string) string {
	return uri + fragmentSeparator + pointer
}

// String converts reference back to its textual form.
func (r Reference) String() string {
	if !r.HasPointer {
		return r.URI
	}

	return Join(r.URI, r.Pointer)
}
