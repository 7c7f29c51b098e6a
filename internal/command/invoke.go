package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/tempaccess/toggler/internal/entity"
	"github.com/tempaccess/toggler/internal/input"
	"github.com/tempaccess/toggler/internal/logger"
)

// Invoke is the struct which runs one event locally.
// It calls real AWS services with local credentials, so it asks confirmation before run.
type Invoke struct {
	Command
	log *logger.Logger
}

func NewInvoke() *Invoke {
	return &Invoke{
		log: logger.WithNamespace("toggler.invoke"),
	}
}

func (i *Invoke) Help() string {
	return COMMAND_HEADER + `
invoke - Run one event locally against AWS.

Usage:
  $ toggler invoke [options]

Options:
  -e, --event        : Event source (JSON string) or "@file" for filename
  -u, --username     : Identity store username
  -a, --account      : Target AWS account id
      --action       : create or delete
      --schedule-arn : ARN of the schedule to delete after the action
      --force        : Run without confirmation

Event JSON is the same as the schedule target input:
  {"username":"...","accountid":"...","action":"create","schedulerarn":"arn:aws:scheduler:..."}
`
}

func (i *Invoke) Run(flags *pflag.FlagSet) error {
	ev, err := parseEvent(flags)
	if err != nil {
		i.log.Error(err.Error())
		return err
	}
	c, err := loadConfig()
	if err != nil {
		i.log.Error(err.Error())
		return err
	}

	if !flagBool(flags, "force") {
		message := fmt.Sprintf(
			"Run %s assignment for user %s on account %s, then delete schedule %s. Are you sure?",
			ev.Action, ev.Username, ev.AccountId, ev.ScheduleArn,
		)
		if !input.Bool(message) {
			i.log.Warn("Abort.")
			return nil
		}
	}

	t, err := buildToggler(c, logger.WithNamespace("toggler"))
	if err != nil {
		i.log.Error(err.Error())
		return err
	}
	if err := t.Run(context.Background(), ev); err != nil {
		i.log.Errorf("An error occurred: %s\n", err)
		debugTrace(err)
		return err
	}
	return nil
}

// parseEvent builds event from --event option, or from individual options.
// Individual options override the fields in --event.
func parseEvent(flags *pflag.FlagSet) (*entity.Event, error) {
	ev := &entity.Event{}
	if src := flagString(flags, "event"); src != "" {
		payload := []byte(src)
		if strings.HasPrefix(src, "@") {
			b, err := os.ReadFile(src[1:])
			if err != nil {
				return nil, errors.Wrapf(err, "Event source file %s couldn't read", src[1:])
			}
			payload = b
		}
		if err := json.Unmarshal(payload, ev); err != nil {
			return nil, errors.Wrap(err, "Event source is not valid JSON")
		}
	}

	if v := flagString(flags, "username"); v != "" {
		ev.Username = v
	}
	if v := flagString(flags, "account"); v != "" {
		ev.AccountId = v
	}
	if v := flagString(flags, "action"); v != "" {
		ev.Action = entity.Action(v)
	}
	if v := flagString(flags, "schedule-arn"); v != "" {
		ev.ScheduleArn = v
	}
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	return ev, nil
}
