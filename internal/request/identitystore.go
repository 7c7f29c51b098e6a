package request

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/identitystore"
	"github.com/aws/aws-sdk-go/service/identitystore/identitystoreiface"
	"github.com/pkg/errors"

	"github.com/tempaccess/toggler/internal/config"
	"github.com/tempaccess/toggler/internal/logger"
)

// IdentityStoreRequest is the struct which wraps IAM Identity Center identity store.
type IdentityStoreRequest struct {
	svc    identitystoreiface.IdentityStoreAPI
	log    *logger.Logger
	config *config.Config
}

func NewIdentityStore(c *config.Config, sess *session.Session) *IdentityStoreRequest {
	return NewIdentityStoreWithClient(c, identitystore.New(sess))
}

func NewIdentityStoreWithClient(c *config.Config, svc identitystoreiface.IdentityStoreAPI) *IdentityStoreRequest {
	return &IdentityStoreRequest{
		config: c,
		svc:    svc,
		log:    logger.WithNamespace("toggler.request.identitystore"),
	}
}

func (i *IdentityStoreRequest) errorLog(err error) {
	logAWSError(i.log, err,
		identitystore.ErrCodeAccessDeniedException,
		identitystore.ErrCodeInternalServerException,
		identitystore.ErrCodeResourceNotFoundException,
		identitystore.ErrCodeThrottlingException,
		identitystore.ErrCodeValidationException,
	)
}

// ListUserIds() returns user ids which UserName exactly matches.
// UserName is unique in an identity store, so the result is usually zero or one.
func (i *IdentityStoreRequest) ListUserIds(ctx context.Context, username string) ([]string, error) {
	input := &identitystore.ListUsersInput{
		IdentityStoreId: aws.String(i.config.IdentityStoreId),
		Filters: []*identitystore.Filter{
			{
				AttributePath:  aws.String("UserName"),
				AttributeValue: aws.String(username),
			},
		},
	}
	debugRequest(input)
	result, err := i.svc.ListUsersWithContext(ctx, input)
	if err != nil {
		i.errorLog(err)
		return nil, errors.Wrapf(err, "Failed to list users for %s", username)
	}
	debugRequest(result)

	ids := []string{}
	for _, u := range result.Users {
		ids = append(ids, aws.StringValue(u.UserId))
	}
	return ids, nil
}
