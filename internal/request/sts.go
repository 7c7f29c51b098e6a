package request

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/aws/aws-sdk-go/service/sts/stsiface"
	"github.com/pkg/errors"

	"github.com/tempaccess/toggler/internal/config"
	"github.com/tempaccess/toggler/internal/logger"
)

type StsRequest struct {
	svc    stsiface.STSAPI
	log    *logger.Logger
	config *config.Config
}

func NewSts(c *config.Config, sess *session.Session) *StsRequest {
	return NewStsWithClient(c, sts.New(sess))
}

func NewStsWithClient(c *config.Config, svc stsiface.STSAPI) *StsRequest {
	return &StsRequest{
		config: c,
		svc:    svc,
		log:    logger.WithNamespace("toggler.request.sts"),
	}
}

// Identity is the caller which the credentials belong to.
type Identity struct {
	Account string
	Arn     string
}

func (s *StsRequest) GetCallerIdentity(ctx context.Context) (*Identity, error) {
	input := &sts.GetCallerIdentityInput{}
	result, err := s.svc.GetCallerIdentityWithContext(ctx, input)
	if err != nil {
		logAWSError(s.log, err)
		return nil, errors.Wrap(err, "Failed to get caller identity")
	}
	return &Identity{
		Account: aws.StringValue(result.Account),
		Arn:     aws.StringValue(result.Arn),
	}, nil
}
