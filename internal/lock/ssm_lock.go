// Package lock implements the nightly orchestrator's idempotency guard as
// a single SSM parameter, grounded on the aws-sdk-go-v2/service/ssm
// dependency already present in the teacher's go.mod.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"go.uber.org/zap"

	"github.com/commutecast/backend/shared/logger"
)

// ErrAlreadyHeld is returned by Acquire when a live (non-stale) lock
// already exists, signaling the caller should skip this run rather than
// run concurrently with another orchestrator instance.
var ErrAlreadyHeld = errors.New("lock: already held")

type Client struct {
	SSM        *ssm.Client
	ParamName  string
	StaleAfter time.Duration
}

func New(ctx context.Context, region, paramName string, staleAfter time.Duration) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &Client{
		SSM:        ssm.NewFromConfig(cfg),
		ParamName:  paramName,
		StaleAfter: staleAfter,
	}, nil
}

// Acquire claims the orchestrator's run lock. If an existing lock value is
// younger than StaleAfter, Acquire returns ErrAlreadyHeld. A lock older
// than StaleAfter is treated as abandoned by a crashed run: Acquire logs it
// as stale and overwrites it rather than blocking forever.
func (c *Client) Acquire(ctx context.Context, holder string) error {
	out, err := c.SSM.GetParameter(ctx, &ssm.GetParameterInput{Name: aws.String(c.ParamName)})
	if err == nil && out.Parameter != nil && out.Parameter.LastModifiedDate != nil {
		age := time.Since(*out.Parameter.LastModifiedDate)
		if age < c.StaleAfter {
			return ErrAlreadyHeld
		}
		logger.Warn("orchestrator lock stale, reclaiming",
			zap.String("param", c.ParamName), zap.Duration("age", age))
	} else if err != nil && !isParameterNotFound(err) {
		return err
	}

	value := fmt.Sprintf("%s@%s", holder, time.Now().UTC().Format(time.RFC3339))
	_, err = c.SSM.PutParameter(ctx, &ssm.PutParameterInput{
		Name:      aws.String(c.ParamName),
		Value:     aws.String(value),
		Type:      types.ParameterTypeString,
		Overwrite: aws.Bool(true),
	})
	return err
}

// Release deletes the lock parameter. A missing parameter is not an
// error: the lock may have already been reclaimed by a later run after a
// stale timeout, and release should still succeed from this run's point of
// view.
func (c *Client) Release(ctx context.Context) error {
	_, err := c.SSM.DeleteParameter(ctx, &ssm.DeleteParameterInput{Name: aws.String(c.ParamName)})
	if err != nil && !isParameterNotFound(err) {
		return err
	}
	return nil
}

func isParameterNotFound(err error) bool {
	var notFound *types.ParameterNotFound
	return errors.As(err, &notFound)
}
