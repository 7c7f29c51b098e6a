package config

import (
	"os"
	"strings"

	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	FileName = "Toggler.toml"

	EnvInstanceArn      = "IAM_IDENTITYCENTER_ARN"
	EnvPermissionSetArn = "ADMIN_PERMISSIONSET_ARN"
	EnvIdentityStoreId  = "IAM_IDENTITYCENTER_IDSTORE_ID"
	EnvRegion           = "AWS_REGION"
	EnvProfile          = "AWS_PROFILE"
)

// Config is the process-wide configuration.
// It is loaded once on startup and must not be modified after that.
type Config struct {
	exists bool   `toml:"-"`
	Root   string `toml:"-"`
	Path   string `toml:"-"`

	InstanceArn      string `toml:"instance_arn"`
	PermissionSetArn string `toml:"permission_set_arn"`
	IdentityStoreId  string `toml:"identity_store_id"`
	Region           string `toml:"region"`
	Profile          string `toml:"profile"`
}

// Load loads configuration from Toggler.toml, .env and environment variables.
// Environment variables take precedence over the file, so the Lambda function
// environment always wins.
// This function returns config although the file didn't exist.
// Then you can confirm as Exists() on config file exists or not.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "Failed to get working directory")
	}
	return load(findUp(cwd))
}

func load(root string) (*Config, error) {
	c := &Config{
		Root: root,
		Path: filepath.Join(root, FileName),
	}

	if _, err := os.Stat(c.Path); err == nil {
		c.exists = true
		if _, err := toml.DecodeFile(c.Path, c); err != nil {
			return nil, errors.Wrap(err, "Syntax error found on configuration file")
		}
	}

	// godotenv never overrides variables which are already set
	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "Failed to load .env file")
	}

	overrideEnv(&c.InstanceArn, EnvInstanceArn)
	overrideEnv(&c.PermissionSetArn, EnvPermissionSetArn)
	overrideEnv(&c.IdentityStoreId, EnvIdentityStoreId)
	overrideEnv(&c.Region, EnvRegion)
	overrideEnv(&c.Profile, EnvProfile)
	return c, nil
}

func overrideEnv(field *string, name string) {
	if v := os.Getenv(name); v != "" {
		*field = v
	}
}

// findUp finds project root which has Toggler.toml from supplied directory.
// If not found, supplied directory is treated as root.
func findUp(dir string) string {
	path := dir
	for {
		if _, err := os.Stat(filepath.Join(path, FileName)); err == nil {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			break
		}
		path = parent
	}
	return dir
}

// Exists() returns bool which config file exists or not.
func (c *Config) Exists() bool {
	return c.exists
}

// Validate() reports all missing identifiers at once.
func (c *Config) Validate() error {
	missing := []string{}
	if c.InstanceArn == "" {
		missing = append(missing, EnvInstanceArn)
	}
	if c.PermissionSetArn == "" {
		missing = append(missing, EnvPermissionSetArn)
	}
	if c.IdentityStoreId == "" {
		missing = append(missing, EnvIdentityStoreId)
	}
	if len(missing) > 0 {
		return errors.Errorf("configuration is not enough, set %s", strings.Join(missing, ", "))
	}
	return nil
}
