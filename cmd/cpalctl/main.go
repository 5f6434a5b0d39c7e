package main

import (
	"fmt"
	"io"
	"os"

	"github.com/danmuck/cpalctl/internal/logging"
	"github.com/rs/zerolog/log"
)

const usage = `usage: cpalctl <command> [flags]

commands:
  decode    decode a binary CPAL table into a palette source
  encode    encode a palette source into a binary CPAL table
  template  write a palette or server template
  validate  validate a server config file
  serve     run the HTTP codec service`

func main() {
	if err := logging.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
	}
	logging.ConfigureRuntime("cpalctl")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("cpalctl failed")
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command\n%s", usage)
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "decode":
		return runDecode(rest, stdout)
	case "encode":
		return runEncode(rest)
	case "template":
		return runTemplate(rest)
	case "validate":
		return runValidate(rest)
	case "serve":
		return runServe(rest)
	case "help", "-h", "--help":
		fmt.Fprintln(stdout, usage)
		return nil
	default:
		return fmt.Errorf("unknown command: %s\n%s", cmd, usage)
	}
}
