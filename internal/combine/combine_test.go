package combine

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarpt/openapi-utils/pkg/jsonref"
)

const (
	fixtures = "../../pkg/openapi/testdata"
)

func TestRunFromFileToStdout(t *testing.T) {
	logger, _ := test.NewNullLogger()
	var out bytes.Buffer

	err := Run(Options{InputFile: filepath.Join(fixtures, "root.yaml")}, nil, &out, logger)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "title: Users")
	assert.Contains(t, out.String(), "#/components/requestBodies/NewUser")
	assert.NotContains(t, out.String(), "common.yaml")
}

func TestRunFromStdinToFile(t *testing.T) {
	logger, hook := test.NewNullLogger()
	output := filepath.Join(t.TempDir(), "combined.yaml")
	input := strings.NewReader(`
paths:
  /users:
    post:
      requestBody:
        $ref: "common.yaml#/components/requestBodies/NewUser"
`)

	err := Run(Options{OutputFile: output, RefDirectory: fixtures, InlineRemoteRefs: true}, input, nil, logger)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "new user")
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "wrote output YAML file", hook.LastEntry().Message)
}

func TestRunErrorCodes(t *testing.T) {
	logger, _ := test.NewNullLogger()

	err := Run(Options{InputFile: filepath.Join(fixtures, "missing.yaml")}, nil, &bytes.Buffer{}, logger)
	assert.Equal(t, RootDocumentErr, CodeOf(err))

	input := strings.NewReader("paths:\n  /users:\n    $ref: common.yaml\n")
	err = Run(Options{RefDirectory: fixtures}, input, &bytes.Buffer{}, logger)
	assert.Equal(t, RefResolveErr, CodeOf(err))
	assert.True(t, errors.Is(err, jsonref.ErrMissingPointer))

	err = Run(Options{}, strings.NewReader("paths: ["), &bytes.Buffer{}, logger)
	assert.Equal(t, InputStdinErr, CodeOf(err))

	err = Run(Options{InputFile: filepath.Join(fixtures, "root.yaml"), OutputFile: t.TempDir()}, nil, nil, logger)
	assert.Equal(t, OutputWriteErr, CodeOf(err))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, NoError, CodeOf(nil))
	assert.Equal(t, UnknownErr, CodeOf(errors.New("plain")))
	assert.Equal(t, OutputStdoutErr, CodeOf(&Error{Code: OutputStdoutErr, Err: errors.New("closed")}))
}
