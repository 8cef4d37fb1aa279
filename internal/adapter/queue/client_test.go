package queue

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticTestCredentials() ClientOption {
	return WithCredentials(credentials.NewStaticCredentialsProvider("test-key", "test-secret", ""))
}

func TestNewClient_DefaultRegion(t *testing.T) {
	client, err := NewClient(context.Background(), "", staticTestCredentials())

	require.NoError(t, err)
	assert.Equal(t, "us-east-1", client.Options().Region)
}

func TestNewClient_ExplicitRegion(t *testing.T) {
	client, err := NewClient(context.Background(), "eu-central-1", staticTestCredentials())

	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", client.Options().Region)
}

func TestNewClient_InjectedCredentials(t *testing.T) {
	client, err := NewClient(context.Background(), "us-east-1", staticTestCredentials())
	require.NoError(t, err)

	creds, err := client.Options().Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-key", creds.AccessKeyID)
}
