// Package eventbus publishes committed domain events to an SNS topic so other
// services can react to signed deals, new quotes and the like.
package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"solar_portal/internal/domain/events"
	"solar_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type SNSPublisher struct {
	client   SNSService
	topicARN string
}

var _ interfaces.IEventPublisher = (*SNSPublisher)(nil)

func NewSNSPublisher(client SNSService, topicARN string) *SNSPublisher {
	return &SNSPublisher{client: client, topicARN: topicARN}
}

// Publish sends one message per event, tagged with event_type and
// project_id attributes for subscription filters.
func (p *SNSPublisher) Publish(ctx context.Context, evs []events.Event) error {
	var errs []error
	for _, ev := range evs {
		body, err := json.Marshal(ev)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		_, err = p.client.Publish(ctx, &sns.PublishInput{
			TopicArn: aws.String(p.topicARN),
			Message:  aws.String(string(body)),
			MessageAttributes: map[string]types.MessageAttributeValue{
				"event_type": {DataType: aws.String("String"), StringValue: aws.String(string(ev.Type))},
				"project_id": {DataType: aws.String("String"), StringValue: aws.String(ev.ProjectID)},
			},
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("publish %s for project %s: %w", ev.Type, ev.ProjectID, err))
		}
	}
	return errors.Join(errs...)
}
