package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// Action is the operation that the event asks for.
type Action string

const (
	ActionCreate Action = "create"
	ActionDelete Action = "delete"
)

// Valid() returns true when action is one of create or delete.
func (a Action) Valid() bool {
	return a == ActionCreate || a == ActionDelete
}

// Event is the struct which maps the schedule target input.
// The scheduler sends it as JSON like:
//
//	{"username":"alice","accountid":"123456789012","action":"create","schedulerarn":"arn:aws:scheduler:..."}
type Event struct {
	Username    string `json:"username"`
	AccountId   string `json:"accountid"`
	Action      Action `json:"action"`
	ScheduleArn string `json:"schedulerarn"`
}

// Validate() checks all fields are supplied.
// Action value itself is not checked here, unknown actions are reported when applying.
func (e *Event) Validate() error {
	missing := []string{}
	if e.Username == "" {
		missing = append(missing, "username")
	}
	if e.AccountId == "" {
		missing = append(missing, "accountid")
	}
	if e.Action == "" {
		missing = append(missing, "action")
	}
	if e.ScheduleArn == "" {
		missing = append(missing, "schedulerarn")
	}
	if len(missing) > 0 {
		return errors.Errorf("missing required field(s): %s", strings.Join(missing, ", "))
	}
	if _, err := ParseScheduleArn(e.ScheduleArn); err != nil {
		return err
	}
	return nil
}

// Schedule() returns the schedule which triggered this event.
func (e *Event) Schedule() (*Schedule, error) {
	return ParseScheduleArn(e.ScheduleArn)
}
