package main

import (
	"github.com/xyproto/env/v2"

	"github.com/xyproto/teensy/internal/amd64"
	"github.com/xyproto/teensy/internal/engine"
)

// defaultOutputFilename is used when neither TEENSY_OUTPUT nor -o is given
const defaultOutputFilename = "tiny"

// Config holds the settings that can come from the environment. Flags
// given on the command line take precedence.
type Config struct {
	Output  string
	Verbose bool
	Style   string
	Target  string
}

// configFromEnv rereads the process environment on every call, since
// env caches it on first use.
func configFromEnv() Config {
	env.Load()
	return Config{
		Output:  env.Str("TEENSY_OUTPUT", defaultOutputFilename),
		Verbose: env.Bool("TEENSY_VERBOSE"),
		Style:   env.Str("TEENSY_STYLE", amd64.StylePushPop.String()),
		Target:  env.Str("TEENSY_TARGET", engine.DefaultTarget.String()),
	}
}
