// Package delivery turns composed reports into outbound email and keeps
// the submission record that makes them retrievable afterwards.
package delivery

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// Email is one outbound message.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// Mailer is the mail transport capability. A failed Send surfaces to the
// caller as a delivery failure; there is no retry here.
type Mailer interface {
	Send(ctx context.Context, msg Email) error
}

// SESMailer sends through AWS SES v2 with static credentials.
type SESMailer struct {
	client *sesv2.Client
	sender string
}

// SESConfig holds the SES transport settings.
type SESConfig struct {
	Region    string
	AccessKey string
	SecretKey string
	Sender    string
}

func NewSESMailer(ctx context.Context, cfg SESConfig) (*SESMailer, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &SESMailer{client: sesv2.NewFromConfig(awsCfg), sender: cfg.Sender}, nil
}

func (m *SESMailer) Send(ctx context.Context, msg Email) error {
	_, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.sender),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTML)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("sending email to %s: %w", msg.To, err)
	}
	return nil
}
