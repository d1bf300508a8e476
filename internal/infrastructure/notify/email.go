// Package notify delivers stored notifications to people outside the app:
// email through SES and live pushes through Redis pub/sub.
package notify

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/infrastructure/logger"
	"solar_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type EmailSender struct {
	client  SESService
	from    string
	baseURL string
	log     logger.Logger
}

var _ interfaces.INotificationDelivery = (*EmailSender)(nil)

// NewEmailSender formats the source as "Name <address>" when fromName is set.
func NewEmailSender(client SESService, fromEmail, fromName, baseURL string, log logger.Logger) *EmailSender {
	from := fromEmail
	if fromName != "" {
		from = fmt.Sprintf("%s <%s>", fromName, fromEmail)
	}
	return &EmailSender{
		client:  client,
		from:    from,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log.Named("email"),
	}
}

// Deliver is a no-op for recipients without an email address.
func (s *EmailSender) Deliver(ctx context.Context, n entities.Notification, recipient entities.User) error {
	to := strings.TrimSpace(recipient.Contact.Email)
	if to == "" {
		s.log.Debug("recipient has no email", map[string]interface{}{"user_id": recipient.ID})
		return nil
	}

	tmpl, ok := templates[n.MessageKey]
	if !ok {
		tmpl = fallbackTemplate
	}
	data := maps.Clone(n.MessageParams)
	if data == nil {
		data = map[string]any{}
	}
	data["link"] = s.baseURL + n.Link

	subject := render(tmpl.Subject, data)
	body := render(tmpl.Body, data)

	_, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(s.from),
	})
	if err != nil {
		return fmt.Errorf("send email to %s: %w", recipient.ID, err)
	}
	s.log.Debug("email sent", map[string]interface{}{
		"user_id":     recipient.ID,
		"message_key": n.MessageKey,
	})
	return nil
}
