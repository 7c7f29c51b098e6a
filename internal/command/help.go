package command

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Help is the struct that displays global command usage.
type Help struct {
	Command
}

func NewHelp() *Help {
	return &Help{}
}

func (h *Help) Run(flags *pflag.FlagSet) error {
	fmt.Println(h.Help())
	return nil
}

func (h *Help) Help() string {
	help := `
Usage:
  $ toggler [subcommand] [options]

SubCommands:
  serve   : Run as AWS Lambda handler (default inside Lambda)
  invoke  : Run one event locally against AWS
  config  : Show and check configuration
  version : Show version

Options:
  -h, --help: Show help

To see subcommand help, run "toggler [subcommand] help".`

	return COMMAND_HEADER + help
}
