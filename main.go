// A tiny ELF writer: builds an x86-64 Linux executable that does nothing
// but exit(0), without an assembler or a linker.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/xyproto/teensy/internal/amd64"
	"github.com/xyproto/teensy/internal/engine"
	"github.com/xyproto/teensy/internal/image"
	"github.com/xyproto/teensy/internal/output"
)

const versionString = "teensy 1.0.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := configFromEnv()

	fs := flag.NewFlagSet("teensy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: teensy [flags] [output]\n\n")
		fs.PrintDefaults()
	}

	// NOTE: flags must come before the positional output filename
	var outputFilenameFlag = fs.String("o", cfg.Output, "output executable filename")
	var outputFilenameLongFlag = fs.String("output", cfg.Output, "output executable filename")
	var versionShort = fs.Bool("V", false, "print version information and exit")
	var version = fs.Bool("version", false, "print version information and exit")
	var verbose = fs.Bool("v", cfg.Verbose, "verbose mode (trace layout and emitted bytes)")
	var verboseLong = fs.Bool("verbose", cfg.Verbose, "verbose mode (trace layout and emitted bytes)")
	var styleFlag = fs.String("style", cfg.Style, "exit sequence encoding (push, mov)")
	var targetFlag = fs.String("target", cfg.Target, "target platform (only x86_64-linux)")
	var checkFlag = fs.String("check", "", "validate an existing executable instead of writing one")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *version || *versionShort {
		fmt.Fprintln(stdout, versionString)
		return 0
	}

	// Only flags given on the command line override the environment
	outputFilename := cfg.Output
	engine.VerboseMode = cfg.Verbose
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			outputFilename = *outputFilenameFlag
		case "output":
			outputFilename = *outputFilenameLongFlag
		case "v":
			engine.VerboseMode = *verbose
		case "verbose":
			engine.VerboseMode = *verboseLong
		}
	})

	if *checkFlag != "" {
		return check(*checkFlag, stdout, stderr)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		outputFilename = fs.Arg(0)
	default:
		fmt.Fprintf(stderr, "Error: expected at most one output filename, got %d\n", fs.NArg())
		return 2
	}

	platform, err := engine.ParsePlatform(*targetFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: Invalid --target '%s': %v\n", *targetFlag, err)
		return 1
	}
	if err := platform.Supported(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	style, err := amd64.ParseStyle(*styleFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if engine.VerboseMode {
		fmt.Fprintf(stderr, "Building %s executable (%s exit sequence) -> %s\n", platform, style, outputFilename)
	}

	buf, err := image.Build(style)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := output.WriteExecutable(outputFilename, buf); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
