package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarpt/openapi-utils/internal/combine"
)

func TestCombineCmd(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := combineCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--input-file", "../../pkg/openapi/testdata/root.yaml", "--inline-remote"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "new user")
}

func TestCombineCmdMissingInput(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := combineCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--input-file", "does-not-exist.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, combine.RootDocumentErr, combine.CodeOf(err))
	assert.Empty(t, out.String())
}

func TestCombineCmdRejectsArgs(t *testing.T) {
	cmd := combineCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"api.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, combine.UnknownErr, combine.CodeOf(err), "usage errors are not resolution errors")
}

func TestCombineCmdUnknownFlag(t *testing.T) {
	cmd := combineCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--no-such-flag"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, combine.UnknownErr, combine.CodeOf(err))
}
