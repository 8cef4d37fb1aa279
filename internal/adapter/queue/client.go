package queue

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

const defaultRegion = "us-east-1"

type ClientOption func(*clientOptions)

type clientOptions struct {
	credentials aws.CredentialsProvider
}

// WithCredentials overrides the ambient credential chain. Tests use it to
// inject a fixed provider instead of depending on the live environment.
func WithCredentials(provider aws.CredentialsProvider) ClientOption {
	return func(o *clientOptions) {
		o.credentials = provider
	}
}

// NewClient builds the process-wide SQS client. An empty region falls back to
// us-east-1. Credentials resolve through the ambient chain (environment
// variables locally, instance identity when deployed), so credential problems
// surface on the first send rather than here.
func NewClient(ctx context.Context, region string, opts ...ClientOption) (*sqs.Client, error) {
	if strings.TrimSpace(region) == "" {
		region = defaultRegion
	}

	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if o.credentials != nil {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(o.credentials))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws configuration: %w", err)
	}

	return sqs.NewFromConfig(cfg), nil
}
