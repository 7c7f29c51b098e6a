package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/tempaccess/toggler/internal/command"
)

var version = "dev"

// inLambda reports whether the binary runs as AWS Lambda function.
// provided.al2 runtimes set AWS_LAMBDA_RUNTIME_API, go1.x runtime sets _LAMBDA_SERVER_PORT.
func inLambda() bool {
	return os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" || os.Getenv("_LAMBDA_SERVER_PORT") != ""
}

func main() {
	flags := command.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil && err != pflag.ErrHelp {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sub := flags.Arg(0)
	if sub == "" && inLambda() {
		sub = command.SERVE
	}

	var cmd command.Command
	switch sub {
	case command.SERVE:
		cmd = command.NewServe()
	case command.INVOKE:
		cmd = command.NewInvoke()
	case command.CONFIG:
		cmd = command.NewConfig()
	case command.VERSION:
		cmd = command.NewVersion(version)
	default:
		cmd = command.NewHelp()
	}

	if help, _ := flags.GetBool("help"); help || flags.Arg(1) == command.HELP {
		fmt.Println(cmd.Help())
		return
	}
	if err := cmd.Run(flags); err != nil {
		os.Exit(1)
	}
}
