package request

import (
	"fmt"
	"reflect"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/k0kubun/pp/v3"
	"github.com/pkg/errors"

	"github.com/tempaccess/toggler/internal/config"
	"github.com/tempaccess/toggler/internal/logger"
)

var debug string = ""

// NewSession() creates common AWS session.
// Credentials are resolved by the default chain (Lambda execution role),
// or from shared credentials when profile is configured for local use.
func NewSession(c *config.Config) (*session.Session, error) {
	conf := aws.NewConfig()
	if c.Region != "" {
		conf = conf.WithRegion(c.Region)
	}
	if c.Profile != "" {
		conf = conf.WithCredentials(
			credentials.NewSharedCredentials("", c.Profile),
		)
	}
	sess, err := session.NewSession(conf)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create AWS session")
	}
	return sess, nil
}

// logAWSError logs error with known error code name for the service.
// codes are the ErrCode constants which the service declares.
func logAWSError(log *logger.Logger, err error, codes ...string) {
	if aerr, ok := err.(awserr.Error); ok {
		for _, code := range codes {
			if aerr.Code() == code {
				log.Error(code, ": ", aerr.Message())
				return
			}
		}
		log.Error(aerr.Error())
	} else {
		log.Error(err.Error())
	}
}

// debug print if enables.
func debugRequest(obj fmt.Stringer) {
	if debug != "enable" {
		return
	}
	var name string
	if t := reflect.TypeOf(obj); t.Kind() == reflect.Ptr {
		name = "*" + t.Elem().Name()
	} else {
		name = t.Name()
	}
	fmt.Printf("[DEBUG] %s\n", name)
	pp.Println(obj)
}
