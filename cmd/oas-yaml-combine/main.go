package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sarpt/openapi-utils/internal/combine"
)

type combineOptions struct {
	combine.Options

	debug bool
}

func combineCmd() *cobra.Command {
	var opts combineOptions
	cmd := &cobra.Command{
		Use:   "oas-yaml-combine",
		Short: "Combine OpenAPI YAML document with the documents it references",
		Long: `Combine OpenAPI YAML document with the documents it references

Objects referenced from other files are copied into the root document under the same JSON Pointer,
and the references are rewritten to point at the local copies.

Example - Combine a document and write the result to standard output:
  oas-yaml-combine --input-file api/openapi.yaml

Example - Read from standard input, resolving remote refs against the api directory:
  cat api/openapi.yaml | oas-yaml-combine --ref-dir api --output-file combined.yaml

Example - Inline local refs in place and keep the referenced objects:
  oas-yaml-combine --input-file api/openapi.yaml --inline-local --keep-local
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombine(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.InputFile, "input-file", "i", "", "path to the input yaml file to be processed. Providing input-file sets the ref directory to the parent directory of provided input-file path")
	cmd.Flags().StringVarP(&opts.OutputFile, "output-file", "o", "", "path to the output yaml file")
	cmd.Flags().StringVarP(&opts.RefDirectory, "ref-dir", "", "", "directory used as a root for ref relative paths resolution. By default current working directory is used, unless the input-file is provided")
	cmd.Flags().BoolVarP(&opts.InlineLocalRefs, "inline-local", "", false, "should local refs be inlined in place when resolved. When set to false, local references are left in the place")
	cmd.Flags().BoolVarP(&opts.InlineRemoteRefs, "inline-remote", "", false, "should remote refs be inlined in place instead of being copied to the root document")
	cmd.Flags().BoolVarP(&opts.KeepLocalRefs, "keep-local", "", false, "keep objects pointed by inlined local refs in their original place")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "debug mode")
	return cmd
}

func runCombine(cmd *cobra.Command, opts combineOptions) error {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if opts.debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	return combine.Run(opts.Options, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
}

func main() {
	if err := combineCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(int(combine.CodeOf(err)))
	}
}
