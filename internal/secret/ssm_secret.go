// Package secret resolves provider credentials from SSM Parameter Store,
// lazily and once per process, so the event provider's API key never has
// to live in plain configuration.
package secret

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type Resolver struct {
	SSM       *ssm.Client
	ParamName string

	once  sync.Once
	value string
	err   error
}

func NewResolver(ctx context.Context, region, paramName string) (*Resolver, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &Resolver{SSM: ssm.NewFromConfig(cfg), ParamName: paramName}, nil
}

// Resolve fetches and decrypts the parameter value on first call and
// caches it in-process for the lifetime of the resolver; subsequent calls
// never hit SSM again.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	r.once.Do(func() {
		out, err := r.SSM.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(r.ParamName),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			r.err = err
			return
		}
		if out.Parameter != nil && out.Parameter.Value != nil {
			r.value = *out.Parameter.Value
		}
	})
	return r.value, r.err
}
