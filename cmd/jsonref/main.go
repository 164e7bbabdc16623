package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/sarpt/openapi-utils/pkg/jsonref"
)

var (
	errMalformedReferences = errors.New("some references are malformed")
)

type splitOptions struct {
	strict bool
	debug  bool
}

// splitResult is the YAML view of a split reference. Absent parts are omitted.
type splitResult struct {
	Ref     string   `yaml:"ref"`
	URI     *string  `yaml:"uri,omitempty"`
	Pointer *string  `yaml:"pointer,omitempty"`
	Tokens  []string `yaml:"tokens,omitempty"`
	Error   string   `yaml:"error,omitempty"`
}

func splitCmd() *cobra.Command {
	var opts splitOptions
	cmd := &cobra.Command{
		Use:   "jsonref <ref>...",
		Short: "Split JSON References into document URI and JSON Pointer",
		Long: `Split JSON References into document URI and JSON Pointer

Example - Split a remote reference:
  jsonref 'common.yaml#/components/schemas/User'

Example - Fail when any of the references has no JSON Pointer:
  jsonref --strict '#/definitions/foo' 'http://example.com/schema.json'
`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.strict, "strict", "s", false, "fail when a reference has no JSON Pointer or the pointer is malformed")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "debug mode")
	return cmd
}

func runSplit(out, errOut io.Writer, refs []string, opts splitOptions) error {
	logger := logrus.New()
	logger.SetOutput(errOut)
	if opts.debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	results := make([]splitResult, 0, len(refs))
	malformed := 0
	for _, ref := range refs {
		result, err := split(ref)
		if err != nil {
			logger.WithField("ref", ref).Debug(err)
			malformed++
		}

		results = append(results, result)
	}

	data, err := yaml.Marshal(results)
	if err != nil {
		return err
	}

	if _, err := out.Write(data); err != nil {
		return err
	}

	if opts.strict && malformed > 0 {
		return fmt.Errorf("%w: %d of %d", errMalformedReferences, malformed, len(refs))
	}

	return nil
}

func split(ref string) (splitResult, error) {
	result := splitResult{Ref: ref}

	if uri, ok := jsonref.ExtractURI(ref); ok {
		result.URI = &uri
	}

	pointer, err := jsonref.ExtractPointer(ref)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	result.Pointer = &pointer

	tokens, err := jsonref.Tokens(pointer)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	result.Tokens = tokens

	return result, nil
}

func main() {
	if err := splitCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
