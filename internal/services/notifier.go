// internal/services/notifier.go
package services

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"

	"careers-backend/internal/common/config"
	"careers-backend/internal/common/logger"
	"careers-backend/internal/models"
)

// EmailSender is satisfied by aws.SESClient.
type EmailSender interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// SMSSender is satisfied by aws.SNSClient.
type SMSSender interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

// Notifier fans a submitted application out to HR email and an optional
// candidate SMS. Delivery failures are logged and never surfaced to the
// submitting request.
type Notifier struct {
	cfg    config.NotificationConfig
	email  EmailSender
	sms    SMSSender
	logger logger.Logger
}

func NewNotifier(cfg config.NotificationConfig, email EmailSender, sms SMSSender, log logger.Logger) *Notifier {
	return &Notifier{cfg: cfg, email: email, sms: sms, logger: log}
}

// ApplicationReceived sends the configured notifications for a freshly
// stored application.
func (n *Notifier) ApplicationReceived(ctx context.Context, app *models.Application) {
	if n.cfg.AWS.SES.Enabled && n.email != nil {
		if err := n.notifyHR(ctx, app); err != nil {
			n.logger.Error("Failed to send HR notification email", map[string]interface{}{"application_id": app.ID, "error": err.Error()})
		}
	}

	if n.cfg.AWS.SNS.Enabled && n.sms != nil && app.Phone != "" {
		if err := n.notifyCandidate(ctx, app); err != nil {
			n.logger.Error("Failed to send candidate SMS", map[string]interface{}{"application_id": app.ID, "error": err.Error()})
		}
	}
}

func (n *Notifier) notifyHR(ctx context.Context, app *models.Application) error {
	subject := fmt.Sprintf("New application: %s", app.CandidateName)
	body := fmt.Sprintf(
		"Candidate: %s\nEmail: %s\nPhone: %s\nSource: %s\nResume: %s\n",
		app.CandidateName, app.Email, app.Phone, app.Source, app.ResumeURL,
	)

	_, err := n.email.SendEmail(ctx, &ses.SendEmailInput{
		Source: awssdk.String(n.cfg.AWS.SES.FromEmail),
		Destination: &sestypes.Destination{
			ToAddresses: []string{n.cfg.AWS.SES.HREmail},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: awssdk.String(subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: awssdk.String(body)},
			},
		},
	})
	return err
}

func (n *Notifier) notifyCandidate(ctx context.Context, app *models.Application) error {
	input := &sns.PublishInput{
		PhoneNumber: awssdk.String(app.Phone),
		Message: awssdk.String(fmt.Sprintf(
			"Hi %s, we received your application and will be in touch soon.",
			app.CandidateName,
		)),
	}
	if senderID := n.cfg.AWS.SNS.DefaultSMSSenderID; senderID != "" {
		input.MessageAttributes = map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {
				DataType:    awssdk.String("String"),
				StringValue: awssdk.String(senderID),
			},
		}
	}

	_, err := n.sms.Publish(ctx, input)
	return err
}
