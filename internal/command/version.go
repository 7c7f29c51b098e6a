package command

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Version is the struct that displays version info.
type Version struct {
	Command
	version string
}

func NewVersion(version string) *Version {
	return &Version{
		version: version,
	}
}

// Display build version.
func (v *Version) Run(flags *pflag.FlagSet) error {
	fmt.Println(v.Help())
	return nil
}

func (v *Version) Help() string {
	return v.version
}
