package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultScheduleGroup is the group that schedules belong to when created without one.
const DefaultScheduleGroup = "default"

// Schedule is the one-shot EventBridge Scheduler schedule identified by its ARN.
type Schedule struct {
	Arn   string
	Group string
	Name  string
}

// ParseScheduleArn() extracts schedule name from ARN.
// The name is the substring after the final "/".
// ARN looks like "arn:aws:scheduler:us-east-1:111111111111:schedule/default/my-schedule",
// so the segment before the name is taken as the group if it exists.
func ParseScheduleArn(arn string) (*Schedule, error) {
	idx := strings.LastIndex(arn, "/")
	if idx < 0 || idx == len(arn)-1 {
		return nil, errors.Errorf("malformed schedule arn: %q", arn)
	}
	sc := &Schedule{
		Arn:  arn,
		Name: arn[idx+1:],
	}
	spl := strings.Split(arn[:idx], "/")
	if len(spl) >= 2 && strings.HasSuffix(spl[len(spl)-2], "schedule") {
		sc.Group = spl[len(spl)-1]
	}
	return sc, nil
}
