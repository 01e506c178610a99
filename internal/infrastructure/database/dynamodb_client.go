package database

import (
	"context"

	"freight_settlement/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	log "github.com/sirupsen/logrus"
)

// ConnectDynamoDB builds the client that stores change-sets, ticket drafts
// and the authorization audit trail. When DynamoDBEndpoint is set (local
// dynamodb) requests go there instead of AWS.
func ConnectDynamoDB(cfg config.Config) *dynamodb.Client {
	awsCfg, err := NewAWSConfig(context.Background(), cfg)
	if err != nil {
		log.WithError(err).Fatal("[storage][dynamodb] failed to create aws config")
	}

	endpoint := cfg.DynamoDBEndpoint
	log.WithFields(log.Fields{"region": cfg.AWSRegion, "endpoint": endpoint}).Info("[storage][dynamodb] client ready")

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

func NewAWSConfig(ctx context.Context, cfg config.Config) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	)
}
