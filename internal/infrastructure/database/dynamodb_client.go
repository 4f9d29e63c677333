package database

import (
	"context"
	"log"

	envconfig "casas_prefab/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the client shared by the models, quotes and site_config repositories.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	endpoint := envconfig.String("DYNAMODB_ENDPOINT", "")
	if endpoint != "" {
		log.Printf("[database][dynamodb] using custom endpoint=%s region=%s", endpoint, cfg.Region)
	}
	return dynamodb.NewFromConfig(cfg, WithEndpoint(endpoint))
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		envconfig.String("AWS_ACCESS_KEY_ID", "local"),
		envconfig.String("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(envconfig.String("AWS_REGION", "us-east-1")),
		config.WithCredentialsProvider(creds),
	)
}

// WithEndpoint points the client at a DynamoDB Local style endpoint. Empty keeps the AWS resolver.
func WithEndpoint(endpoint string) func(*dynamodb.Options) {
	return func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}
}
