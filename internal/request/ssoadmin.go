package request

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ssoadmin"
	"github.com/aws/aws-sdk-go/service/ssoadmin/ssoadminiface"
	"github.com/pkg/errors"

	"github.com/tempaccess/toggler/internal/config"
	"github.com/tempaccess/toggler/internal/entity"
	"github.com/tempaccess/toggler/internal/logger"
)

// SSOAdminRequest is the struct which manages account assignments.
type SSOAdminRequest struct {
	svc    ssoadminiface.SSOAdminAPI
	log    *logger.Logger
	config *config.Config
}

func NewSSOAdmin(c *config.Config, sess *session.Session) *SSOAdminRequest {
	return NewSSOAdminWithClient(c, ssoadmin.New(sess))
}

func NewSSOAdminWithClient(c *config.Config, svc ssoadminiface.SSOAdminAPI) *SSOAdminRequest {
	return &SSOAdminRequest{
		config: c,
		svc:    svc,
		log:    logger.WithNamespace("toggler.request.ssoadmin"),
	}
}

func (s *SSOAdminRequest) errorLog(err error) {
	logAWSError(s.log, err,
		ssoadmin.ErrCodeAccessDeniedException,
		ssoadmin.ErrCodeConflictException,
		ssoadmin.ErrCodeInternalServerException,
		ssoadmin.ErrCodeResourceNotFoundException,
		ssoadmin.ErrCodeServiceQuotaExceededException,
		ssoadmin.ErrCodeThrottlingException,
		ssoadmin.ErrCodeValidationException,
	)
}

// logStatus outputs the accepted operation status.
// Assignment operations run asynchronously on AWS and we never poll them.
func (s *SSOAdminRequest) logStatus(op string, st *ssoadmin.AccountAssignmentOperationStatus) {
	if st == nil {
		return
	}
	s.log.Infof("%s accepted: request_id=%s status=%s\n",
		op,
		aws.StringValue(st.RequestId),
		aws.StringValue(st.Status),
	)
	if aws.StringValue(st.Status) == ssoadmin.StatusValuesFailed {
		s.log.Warnf("%s reported failure: %s\n", op, aws.StringValue(st.FailureReason))
	}
}

// CreateAssignment() grants the permission set to the principal on the target.
func (s *SSOAdminRequest) CreateAssignment(ctx context.Context, a *entity.Assignment) error {
	s.log.Printf("Create account assignment, principal: %s, target: %s...\n", a.PrincipalId, a.TargetId)
	input := &ssoadmin.CreateAccountAssignmentInput{
		InstanceArn:      aws.String(a.InstanceArn),
		TargetId:         aws.String(a.TargetId),
		TargetType:       aws.String(a.TargetType),
		PermissionSetArn: aws.String(a.PermissionSetArn),
		PrincipalType:    aws.String(a.PrincipalType),
		PrincipalId:      aws.String(a.PrincipalId),
	}
	debugRequest(input)
	result, err := s.svc.CreateAccountAssignmentWithContext(ctx, input)
	if err != nil {
		s.errorLog(err)
		return errors.Wrap(err, "Failed to create account assignment")
	}
	debugRequest(result)
	s.logStatus("CreateAccountAssignment", result.AccountAssignmentCreationStatus)
	return nil
}

// DeleteAssignment() revokes the permission set from the principal on the target.
func (s *SSOAdminRequest) DeleteAssignment(ctx context.Context, a *entity.Assignment) error {
	s.log.Printf("Delete account assignment, principal: %s, target: %s...\n", a.PrincipalId, a.TargetId)
	input := &ssoadmin.DeleteAccountAssignmentInput{
		InstanceArn:      aws.String(a.InstanceArn),
		TargetId:         aws.String(a.TargetId),
		TargetType:       aws.String(a.TargetType),
		PermissionSetArn: aws.String(a.PermissionSetArn),
		PrincipalType:    aws.String(a.PrincipalType),
		PrincipalId:      aws.String(a.PrincipalId),
	}
	debugRequest(input)
	result, err := s.svc.DeleteAccountAssignmentWithContext(ctx, input)
	if err != nil {
		s.errorLog(err)
		return errors.Wrap(err, "Failed to delete account assignment")
	}
	debugRequest(result)
	s.logStatus("DeleteAccountAssignment", result.AccountAssignmentDeletionStatus)
	return nil
}
