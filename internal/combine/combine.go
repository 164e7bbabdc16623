// Package combine runs the whole combining pipeline: read the root document, resolve its references and write the result.
package combine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/sarpt/openapi-utils/pkg/openapi"
)

// Code is a numeric status of the combining, returned to the C callers
type Code int

// Status codes, grouped by tens: input, output and resolution.
// UnknownErr covers failures outside of the pipeline, like command line usage errors.
const (
	NoError           Code = 0
	UnknownErr        Code = 1
	InputFilepathErr  Code = 11
	InputStdinErr     Code = 12
	RefDirCwdErr      Code = 13
	OutputFilepathErr Code = 21
	OutputWriteErr    Code = 22
	OutputStdoutErr   Code = 23
	RootDocumentErr   Code = 31
	RefResolveErr     Code = 32
)

// Error ties the failure with the status code
type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func fail(code Code, format string, args ...interface{}) error {
	return &Error{
		Code: code,
		Err:  fmt.Errorf(format, args...),
	}
}

// CodeOf returns the status code carried by err, or UnknownErr when err did not come from Run
func CodeOf(err error) Code {
	if err == nil {
		return NoError
	}

	var combineErr *Error
	if errors.As(err, &combineErr) {
		return combineErr.Code
	}

	return UnknownErr
}

// Options specifies where to read from, where to write to and how references should be handled
type Options struct {
	InputFile        string
	OutputFile       string
	RefDirectory     string
	InlineLocalRefs  bool
	InlineRemoteRefs bool
	KeepLocalRefs    bool
}

// Run combines the document. When InputFile is empty the document is read from stdin, when OutputFile is empty the result goes to stdout.
func Run(opts Options, stdin io.Reader, stdout io.Writer, logger logrus.FieldLogger) error {
	rootCfg := openapi.Config{
		InlineLocalRefs:  opts.InlineLocalRefs,
		InlineRemoteRefs: opts.InlineRemoteRefs,
		KeepLocalRefs:    opts.KeepLocalRefs,
		Logger:           logger,
	}

	rootDocument := openapi.NewDocument(rootCfg)
	if opts.InputFile != "" {
		inputFilePath, err := filepath.Abs(opts.InputFile)
		if err != nil {
			return fail(InputFilepathErr, "could not parse input file path: %w", err)
		}

		err = rootDocument.ReadFile(inputFilePath)
		if err != nil {
			return fail(RootDocumentErr, "error while parsing the root document: %w", err)
		}
	} else {
		err := rootDocument.Read(stdin)
		if err != nil {
			return fail(InputStdinErr, "error while reading from standard input: %w", err)
		}

		if opts.RefDirectory != "" {
			rootDocument.SetRefDirectory(opts.RefDirectory)
		} else {
			pwdRefDir, err := os.Getwd()
			if err != nil {
				return fail(RefDirCwdErr, "could not set reference directory to current working directory: %w", err)
			}

			rootDocument.SetRefDirectory(pwdRefDir)
		}
	}

	logger.WithField("ref-dir", rootDocument.RefDirectory).Debug("resolving root document")

	err := rootDocument.ResolveReferences()
	if err != nil {
		return fail(RefResolveErr, "error while resolving references in root document: %w", err)
	}

	if opts.OutputFile == "" {
		err := rootDocument.Write(stdout)
		if err != nil {
			return fail(OutputStdoutErr, "could not write yaml to standard output: %w", err)
		}

		return nil
	}

	outputFilePath, err := filepath.Abs(opts.OutputFile)
	if err != nil {
		return fail(OutputFilepathErr, "could not parse output file path: %w", err)
	}

	err = rootDocument.WriteFile(outputFilePath)
	if err != nil {
		return fail(OutputWriteErr, "error while writing output to path %s: %w", outputFilePath, err)
	}

	logger.WithField("path", outputFilePath).Info("wrote output YAML file")
	return nil
}
