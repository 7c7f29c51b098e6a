package command

import (
	"github.com/spf13/pflag"
)

const COMMAND_HEADER = `============================================================
 toggler: IAM Identity Center temporary access toggler
============================================================`

const (
	SERVE   = "serve"
	INVOKE  = "invoke"
	CONFIG  = "config"
	VERSION = "version"
	HELP    = "help"
)

// Command is the interface implemented by structs that can run the command
// and show help as usage.
// Run returns error when the command failed, then the process exits with non-zero status.
type Command interface {
	Run(flags *pflag.FlagSet) error
	Help() string
}

// Flags returns the flag set which every command reads its options from.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("toggler", pflag.ContinueOnError)
	fs.BoolP("help", "h", false, "Show help")
	fs.StringP("event", "e", "", "Event JSON string or \"@file\" for filename")
	fs.StringP("username", "u", "", "Identity store username")
	fs.StringP("account", "a", "", "Target AWS account id")
	fs.String("action", "", "Assignment action [create|delete]")
	fs.String("schedule-arn", "", "ARN of the schedule to delete after the action")
	fs.Bool("force", false, "Skip confirmation")
	fs.Usage = func() {}
	return fs
}

// flagString returns string flag value, empty string if the flag is not defined.
func flagString(fs *pflag.FlagSet, name string) string {
	v, err := fs.GetString(name)
	if err != nil {
		return ""
	}
	return v
}

// flagBool returns bool flag value, false if the flag is not defined.
func flagBool(fs *pflag.FlagSet, name string) bool {
	v, err := fs.GetBool(name)
	if err != nil {
		return false
	}
	return v
}
