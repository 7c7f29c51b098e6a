package request

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/scheduler"
	"github.com/aws/aws-sdk-go/service/scheduler/scheduleriface"
	"github.com/pkg/errors"

	"github.com/tempaccess/toggler/internal/config"
	"github.com/tempaccess/toggler/internal/entity"
	"github.com/tempaccess/toggler/internal/logger"
)

// SchedulerRequest is the struct which wraps EventBridge Scheduler service.
type SchedulerRequest struct {
	svc    scheduleriface.SchedulerAPI
	log    *logger.Logger
	config *config.Config
}

func NewScheduler(c *config.Config, sess *session.Session) *SchedulerRequest {
	return NewSchedulerWithClient(c, scheduler.New(sess))
}

func NewSchedulerWithClient(c *config.Config, svc scheduleriface.SchedulerAPI) *SchedulerRequest {
	return &SchedulerRequest{
		config: c,
		svc:    svc,
		log:    logger.WithNamespace("toggler.request.scheduler"),
	}
}

func (s *SchedulerRequest) errorLog(err error) {
	logAWSError(s.log, err,
		scheduler.ErrCodeConflictException,
		scheduler.ErrCodeInternalServerException,
		scheduler.ErrCodeResourceNotFoundException,
		scheduler.ErrCodeThrottlingException,
		scheduler.ErrCodeValidationException,
	)
}

// DeleteSchedule() deletes the schedule by name.
// A schedule which does not exist is an error, it is not ignored.
func (s *SchedulerRequest) DeleteSchedule(ctx context.Context, sc *entity.Schedule) error {
	s.log.Printf("Delete schedule, name: %s...\n", sc.Name)
	input := &scheduler.DeleteScheduleInput{
		Name: aws.String(sc.Name),
	}
	if sc.Group != "" {
		input.GroupName = aws.String(sc.Group)
	}
	debugRequest(input)
	result, err := s.svc.DeleteScheduleWithContext(ctx, input)
	if err != nil {
		s.errorLog(err)
		return errors.Wrapf(err, "Failed to delete schedule %s", sc.Name)
	}
	debugRequest(result)
	s.log.Info("Schedule deleted successfully")
	return nil
}
