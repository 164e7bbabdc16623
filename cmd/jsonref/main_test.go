package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

func execute(t *testing.T, args ...string) ([]splitResult, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := splitCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	var results []splitResult
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &results))
	return results, err
}

func TestSplitCmd(t *testing.T) {
	results, err := execute(t,
		"http://example.com/schema.json#/defs/bar",
		"#/definitions/foo",
		"#",
		"http://example.com/schema.json",
	)
	require.NoError(t, err)
	require.Len(t, results, 4)

	require.NotNil(t, results[0].URI)
	assert.Equal(t, "http://example.com/schema.json", *results[0].URI)
	require.NotNil(t, results[0].Pointer)
	assert.Equal(t, "/defs/bar", *results[0].Pointer)
	assert.Equal(t, []string{"defs", "bar"}, results[0].Tokens)

	assert.Nil(t, results[1].URI)
	assert.Equal(t, []string{"definitions", "foo"}, results[1].Tokens)

	assert.Nil(t, results[2].URI)
	require.NotNil(t, results[2].Pointer)
	assert.Equal(t, "", *results[2].Pointer)
	assert.Empty(t, results[2].Tokens)

	require.NotNil(t, results[3].URI)
	assert.Nil(t, results[3].Pointer)
	assert.NotEmpty(t, results[3].Error)
}

func TestSplitCmdStrict(t *testing.T) {
	results, err := execute(t, "--strict", "#/ok", "whole.json")
	assert.ErrorIs(t, err, errMalformedReferences)
	assert.Len(t, results, 2)

	_, err = execute(t, "--strict", "#/a~2")
	assert.ErrorIs(t, err, errMalformedReferences)

	_, err = execute(t, "--strict", "a.json#/b")
	assert.NoError(t, err)
}
