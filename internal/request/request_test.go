package request

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	awsrequest "github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/identitystore"
	"github.com/aws/aws-sdk-go/service/identitystore/identitystoreiface"
	"github.com/aws/aws-sdk-go/service/scheduler"
	"github.com/aws/aws-sdk-go/service/scheduler/scheduleriface"
	"github.com/aws/aws-sdk-go/service/ssoadmin"
	"github.com/aws/aws-sdk-go/service/ssoadmin/ssoadminiface"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/aws/aws-sdk-go/service/sts/stsiface"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempaccess/toggler/internal/config"
	"github.com/tempaccess/toggler/internal/entity"
)

var testConfig = &config.Config{
	InstanceArn:      "arn:aws:sso:::instance/ssoins-1",
	PermissionSetArn: "arn:aws:sso:::permissionSet/ssoins-1/ps-1",
	IdentityStoreId:  "d-1234567890",
	Region:           "us-east-1",
}

type fakeIdentityStore struct {
	identitystoreiface.IdentityStoreAPI
	input  *identitystore.ListUsersInput
	output *identitystore.ListUsersOutput
	err    error
}

func (f *fakeIdentityStore) ListUsersWithContext(ctx aws.Context, in *identitystore.ListUsersInput, opts ...awsrequest.Option) (*identitystore.ListUsersOutput, error) {
	f.input = in
	return f.output, f.err
}

type fakeSSOAdmin struct {
	ssoadminiface.SSOAdminAPI
	created []*ssoadmin.CreateAccountAssignmentInput
	deleted []*ssoadmin.DeleteAccountAssignmentInput
	err     error
}

func (f *fakeSSOAdmin) CreateAccountAssignmentWithContext(ctx aws.Context, in *ssoadmin.CreateAccountAssignmentInput, opts ...awsrequest.Option) (*ssoadmin.CreateAccountAssignmentOutput, error) {
	f.created = append(f.created, in)
	if f.err != nil {
		return nil, f.err
	}
	return &ssoadmin.CreateAccountAssignmentOutput{
		AccountAssignmentCreationStatus: &ssoadmin.AccountAssignmentOperationStatus{
			RequestId: aws.String("req-create"),
			Status:    aws.String(ssoadmin.StatusValuesInProgress),
		},
	}, nil
}

func (f *fakeSSOAdmin) DeleteAccountAssignmentWithContext(ctx aws.Context, in *ssoadmin.DeleteAccountAssignmentInput, opts ...awsrequest.Option) (*ssoadmin.DeleteAccountAssignmentOutput, error) {
	f.deleted = append(f.deleted, in)
	if f.err != nil {
		return nil, f.err
	}
	return &ssoadmin.DeleteAccountAssignmentOutput{
		AccountAssignmentDeletionStatus: &ssoadmin.AccountAssignmentOperationStatus{
			RequestId:     aws.String("req-delete"),
			Status:        aws.String(ssoadmin.StatusValuesFailed),
			FailureReason: aws.String("assignment not found"),
		},
	}, nil
}

type fakeScheduler struct {
	scheduleriface.SchedulerAPI
	inputs []*scheduler.DeleteScheduleInput
	err    error
}

func (f *fakeScheduler) DeleteScheduleWithContext(ctx aws.Context, in *scheduler.DeleteScheduleInput, opts ...awsrequest.Option) (*scheduler.DeleteScheduleOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &scheduler.DeleteScheduleOutput{}, nil
}

type fakeSts struct {
	stsiface.STSAPI
	err error
}

func (f *fakeSts) GetCallerIdentityWithContext(ctx aws.Context, in *sts.GetCallerIdentityInput, opts ...awsrequest.Option) (*sts.GetCallerIdentityOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &sts.GetCallerIdentityOutput{
		Account: aws.String("111111111111"),
		Arn:     aws.String("arn:aws:iam::111111111111:user/operator"),
	}, nil
}

func TestListUserIds(t *testing.T) {
	svc := &fakeIdentityStore{
		output: &identitystore.ListUsersOutput{
			Users: []*identitystore.User{
				{UserId: aws.String("user-1"), UserName: aws.String("alice")},
			},
		},
	}
	req := NewIdentityStoreWithClient(testConfig, svc)

	ids, err := req.ListUserIds(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, ids)

	assert.Equal(t, "d-1234567890", aws.StringValue(svc.input.IdentityStoreId))
	require.Len(t, svc.input.Filters, 1)
	assert.Equal(t, "UserName", aws.StringValue(svc.input.Filters[0].AttributePath))
	assert.Equal(t, "alice", aws.StringValue(svc.input.Filters[0].AttributeValue))
}

func TestListUserIdsEmpty(t *testing.T) {
	svc := &fakeIdentityStore{output: &identitystore.ListUsersOutput{}}
	ids, err := NewIdentityStoreWithClient(testConfig, svc).ListUserIds(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestListUserIdsError(t *testing.T) {
	cause := awserr.New(identitystore.ErrCodeAccessDeniedException, "not allowed", nil)
	svc := &fakeIdentityStore{err: cause}
	_, err := NewIdentityStoreWithClient(testConfig, svc).ListUserIds(context.Background(), "alice")
	require.Error(t, err)
	assert.Equal(t, cause, errors.Cause(err))
}

func testAssignment() *entity.Assignment {
	return entity.NewUserAssignment(testConfig.InstanceArn, testConfig.PermissionSetArn, "123456789012", "user-1")
}

func TestCreateAssignment(t *testing.T) {
	svc := &fakeSSOAdmin{}
	req := NewSSOAdminWithClient(testConfig, svc)

	require.NoError(t, req.CreateAssignment(context.Background(), testAssignment()))
	require.Len(t, svc.created, 1)
	assert.Empty(t, svc.deleted)

	in := svc.created[0]
	assert.Equal(t, "arn:aws:sso:::instance/ssoins-1", aws.StringValue(in.InstanceArn))
	assert.Equal(t, "123456789012", aws.StringValue(in.TargetId))
	assert.Equal(t, ssoadmin.TargetTypeAwsAccount, aws.StringValue(in.TargetType))
	assert.Equal(t, "arn:aws:sso:::permissionSet/ssoins-1/ps-1", aws.StringValue(in.PermissionSetArn))
	assert.Equal(t, ssoadmin.PrincipalTypeUser, aws.StringValue(in.PrincipalType))
	assert.Equal(t, "user-1", aws.StringValue(in.PrincipalId))
}

func TestDeleteAssignment(t *testing.T) {
	svc := &fakeSSOAdmin{}
	req := NewSSOAdminWithClient(testConfig, svc)

	// FAILED status in the accepted response is only logged
	require.NoError(t, req.DeleteAssignment(context.Background(), testAssignment()))
	require.Len(t, svc.deleted, 1)
	assert.Empty(t, svc.created)
	assert.Equal(t, "user-1", aws.StringValue(svc.deleted[0].PrincipalId))
	assert.Equal(t, ssoadmin.TargetTypeAwsAccount, aws.StringValue(svc.deleted[0].TargetType))
}

func TestAssignmentError(t *testing.T) {
	cause := awserr.New(ssoadmin.ErrCodeThrottlingException, "slow down", nil)
	req := NewSSOAdminWithClient(testConfig, &fakeSSOAdmin{err: cause})

	err := req.CreateAssignment(context.Background(), testAssignment())
	require.Error(t, err)
	assert.Equal(t, cause, errors.Cause(err))

	err = req.DeleteAssignment(context.Background(), testAssignment())
	require.Error(t, err)
	assert.Equal(t, cause, errors.Cause(err))
}

func TestDeleteSchedule(t *testing.T) {
	svc := &fakeScheduler{}
	req := NewSchedulerWithClient(testConfig, svc)

	sc, err := entity.ParseScheduleArn("arn:aws:scheduler:us-east-1:111111111111:schedule/default/my-schedule")
	require.NoError(t, err)
	require.NoError(t, req.DeleteSchedule(context.Background(), sc))

	require.Len(t, svc.inputs, 1)
	assert.Equal(t, "my-schedule", aws.StringValue(svc.inputs[0].Name))
	assert.Equal(t, "default", aws.StringValue(svc.inputs[0].GroupName))
}

func TestDeleteScheduleWithoutGroup(t *testing.T) {
	svc := &fakeScheduler{}
	req := NewSchedulerWithClient(testConfig, svc)

	require.NoError(t, req.DeleteSchedule(context.Background(), &entity.Schedule{Name: "my-schedule"}))
	require.Len(t, svc.inputs, 1)
	assert.Nil(t, svc.inputs[0].GroupName)
}

func TestDeleteScheduleNotFound(t *testing.T) {
	cause := awserr.New(scheduler.ErrCodeResourceNotFoundException, "schedule not found", nil)
	req := NewSchedulerWithClient(testConfig, &fakeScheduler{err: cause})

	err := req.DeleteSchedule(context.Background(), &entity.Schedule{Name: "gone"})
	require.Error(t, err)
	assert.Equal(t, cause, errors.Cause(err))
	assert.Contains(t, err.Error(), "gone")
}

func TestGetCallerIdentity(t *testing.T) {
	id, err := NewStsWithClient(testConfig, &fakeSts{}).GetCallerIdentity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "111111111111", id.Account)

	_, err = NewStsWithClient(testConfig, &fakeSts{err: errors.New("no credentials")}).GetCallerIdentity(context.Background())
	assert.Error(t, err)
}

func TestNewSession(t *testing.T) {
	sess, err := NewSession(testConfig)
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", aws.StringValue(sess.Config.Region))
}
