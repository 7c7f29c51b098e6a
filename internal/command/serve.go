package command

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/spf13/pflag"

	"github.com/tempaccess/toggler/internal/entity"
	"github.com/tempaccess/toggler/internal/logger"
)

// runner runs one event.
type runner interface {
	Run(ctx context.Context, ev *entity.Event) error
}

// Serve is the struct which runs toggler as AWS Lambda function handler.
// The schedule target input is delivered as the invocation payload.
type Serve struct {
	Command
	log *logger.Logger
}

func NewServe() *Serve {
	return &Serve{
		log: logger.WithNamespace("toggler.serve"),
	}
}

func (s *Serve) Help() string {
	return COMMAND_HEADER + `
serve - Run as AWS Lambda function handler.

Usage:
  $ toggler serve

This command is chosen automatically when the binary runs inside AWS Lambda.
Configuration is read from environment variables:
  IAM_IDENTITYCENTER_ARN        : IAM Identity Center instance ARN
  ADMIN_PERMISSIONSET_ARN       : Permission set ARN to grant or revoke
  IAM_IDENTITYCENTER_IDSTORE_ID : Identity store id
`
}

// Run starts Lambda runtime loop. It returns only when the runtime could not start.
func (s *Serve) Run(flags *pflag.FlagSet) error {
	c, err := loadConfig()
	if err != nil {
		s.log.Error(err.Error())
		return err
	}
	t, err := buildToggler(c, logger.WithNamespace("toggler"))
	if err != nil {
		s.log.Error(err.Error())
		return err
	}
	s.log.Print("Loading function")
	lambda.Start(newHandler(t, s.log))
	return nil
}

// newHandler makes Lambda handler function.
// Returned error marks the invocation as failed for the scheduler.
func newHandler(r runner, log *logger.Logger) func(context.Context, entity.Event) error {
	return func(ctx context.Context, ev entity.Event) error {
		l := log
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			l = log.AddNamespace(lc.AwsRequestID)
		}
		l.Printf("Received event: action=%s username=%s accountid=%s schedulerarn=%s\n",
			ev.Action, ev.Username, ev.AccountId, ev.ScheduleArn,
		)
		if err := r.Run(ctx, &ev); err != nil {
			l.Errorf("An error occurred: %s\n", err)
			debugTrace(err)
			return err
		}
		return nil
	}
}
