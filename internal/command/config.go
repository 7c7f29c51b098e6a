package command

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/tempaccess/toggler/internal/colors"
	"github.com/tempaccess/toggler/internal/config"
	"github.com/tempaccess/toggler/internal/logger"
	"github.com/tempaccess/toggler/internal/request"
)

// Config struct is the accept 'toggler config' command.
type Config struct {
	Command
	log *logger.Logger
}

func NewConfig() *Config {
	return &Config{
		log: logger.WithNamespace("toggler.config"),
	}
}

// Show this command help.
func (c *Config) Help() string {
	return COMMAND_HEADER + `
config - Show resolved configuration and check AWS credentials.

Usage:
  $ toggler config

Configuration is read from Toggler.toml, .env and environment variables (later wins):
  instance_arn       / IAM_IDENTITYCENTER_ARN
  permission_set_arn / ADMIN_PERMISSIONSET_ARN
  identity_store_id  / IAM_IDENTITYCENTER_IDSTORE_ID
  region             / AWS_REGION
  profile            / AWS_PROFILE
`
}

// Run the config command.
func (c *Config) Run(flags *pflag.FlagSet) error {
	conf, err := config.Load()
	if err != nil {
		c.log.Error(err.Error())
		return err
	}
	if conf.Exists() {
		c.log.Printf("Configuration file: %s\n", conf.Path)
	} else {
		c.log.Print("Configuration file not found, use environment variables only.")
	}
	fmt.Println(formatConfig(conf))

	if err := conf.Validate(); err != nil {
		c.log.Error(err.Error())
		return err
	}

	sess, err := request.NewSession(conf)
	if err != nil {
		c.log.Error(err.Error())
		return err
	}
	id, err := request.NewSts(conf, sess).GetCallerIdentity(context.Background())
	if err != nil {
		err = exception("Couldn't confirm AWS credentials: %s", err.Error())
		c.log.Error(err.Error())
		return err
	}
	c.log.Infof("Credentials OK: account=%s arn=%s\n", id.Account, id.Arn)
	return nil
}

func formatConfig(c *config.Config) string {
	value := func(v string) string {
		if v == "" {
			return colors.Red("(not set)")
		}
		return colors.Green(v)
	}
	return fmt.Sprintf(
		"%-20s %s\n%-20s %s\n%-20s %s\n%-20s %s\n%-20s %s",
		"instance_arn", value(c.InstanceArn),
		"permission_set_arn", value(c.PermissionSetArn),
		"identity_store_id", value(c.IdentityStoreId),
		"region", value(c.Region),
		"profile", value(c.Profile),
	)
}
