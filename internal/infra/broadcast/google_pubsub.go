package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"draftdesk/internal/domain/service"
	"draftdesk/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePublisher forwards snapshots through Google Cloud Pub/Sub.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePublisher creates a snapshot publisher bound to an existing topic.
func NewGooglePublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.SnapshotPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub snapshot publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// PublishSnapshot forwards one snapshot to the topic.
func (p *googlePublisher) PublishSnapshot(ctx context.Context, snapshot *service.PortfolioSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"origin": snapshot.Origin,
		},
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[GoogleBroadcast] Snapshot published",
		slog.String("origin", snapshot.Origin),
		slog.String("server_id", serverID),
		slog.Int("item_count", len(snapshot.Items)),
	)

	return nil
}

// Close releases Pub/Sub client resources.
func (p *googlePublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

// RunGoogleSubscriber pulls snapshots from the subscription and feeds them to
// the broadcaster until ctx is cancelled. Meant to run in its own goroutine.
func RunGoogleSubscriber(ctx context.Context, projectID, subscriptionID string, b *Broadcaster, logger *slog.Logger) error {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return errors.WithStack(err)
	}
	defer client.Close()

	sub := client.Subscriber(subscriptionID)

	err = sub.Receive(ctx, func(_ context.Context, msg *pubsub.Message) {
		var snapshot service.PortfolioSnapshot
		if err := json.Unmarshal(msg.Data, &snapshot); err != nil {
			logger.Error("failed to decode remote snapshot",
				slog.Any("error", err),
			)
			msg.Ack()

			return
		}

		b.HandleRemote(&snapshot)
		msg.Ack()
	})
	if err != nil && ctx.Err() == nil {
		return errors.Wrap(err, "failed to receive from subscription")
	}

	return nil
}
