package openapi

import (
	"errors"
	"fmt"

	"github.com/sarpt/openapi-utils/pkg/jsonref"
)

var (
	// ErrRootReference informs that reference points at the whole document instead of an object inside of it
	ErrRootReference = errors.New("reference points to the document root")
)

// reference is an object found with "$ref" set, with the ref already split into document and pointer.
type reference struct {
	object OasObject
	ref    jsonref.Reference
}

func (r reference) remote() bool {
	return r.ref.HasURI
}

// local returns the ref pointing at the same place in the current document.
func (r reference) local() jsonref.Reference {
	return jsonref.Reference{
		Pointer:    r.ref.Pointer,
		HasPointer: r.ref.HasPointer,
	}
}

func (r reference) String() string {
	return r.ref.String()
}

// remoteFirst orders remote references before local ones, since local reference can alias the remote one.
func remoteFirst(refs []reference) func(i, j int) bool {
	return func(i, j int) bool {
		return refs[i].remote() && !refs[j].remote()
	}
}

// pointerTokens returns unescaped tokens of the ref pointer.
// Refs without pointer and refs to the document root cannot address an OpenAPI object.
func pointerTokens(ref jsonref.Reference) ([]string, error) {
	if !ref.HasPointer {
		return nil, fmt.Errorf("whole document references are not supported: %w: %q", jsonref.ErrMissingPointer, ref.URI)
	}

	tokens, err := jsonref.Tokens(ref.Pointer)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRootReference, ref)
	}

	return tokens, nil
}
