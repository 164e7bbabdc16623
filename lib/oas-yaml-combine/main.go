package main

// #cgo CFLAGS: -g -Wall
import "C"

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sarpt/openapi-utils/internal/combine"
)

//export oasYamlCombine
func oasYamlCombine(inputFilePath *C.char, outputFilePath *C.char, refDirPath *C.char, inlineLocalRefs C.int, inlineRemoteRefs C.int, keepLocalRefs C.int) C.int {
	opts := combine.Options{
		InputFile:        C.GoString(inputFilePath),
		OutputFile:       C.GoString(outputFilePath),
		RefDirectory:     C.GoString(refDirPath),
		InlineLocalRefs:  inlineLocalRefs == 1,
		InlineRemoteRefs: inlineRemoteRefs == 1,
		KeepLocalRefs:    keepLocalRefs == 1,
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	err := combine.Run(opts, os.Stdin, os.Stdout, logger)
	if err != nil {
		logger.Error(err)
	}

	return C.int(combine.CodeOf(err))
}

func main() {}
