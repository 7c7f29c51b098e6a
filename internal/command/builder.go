package command

import (
	"github.com/tempaccess/toggler/internal/config"
	"github.com/tempaccess/toggler/internal/logger"
	"github.com/tempaccess/toggler/internal/request"
	"github.com/tempaccess/toggler/internal/toggler"
)

// loadConfig loads and validates process-wide configuration.
func loadConfig() (*config.Config, error) {
	c, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// buildToggler wires AWS service requests into the toggler.
// Session and clients are created once and shared by every invocation.
func buildToggler(c *config.Config, log *logger.Logger) (*toggler.Toggler, error) {
	sess, err := request.NewSession(c)
	if err != nil {
		return nil, err
	}
	return toggler.New(
		c,
		request.NewIdentityStore(c, sess),
		request.NewSSOAdmin(c, sess),
		request.NewScheduler(c, sess),
		log,
	), nil
}
