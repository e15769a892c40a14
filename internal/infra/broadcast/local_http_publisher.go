package broadcast

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"draftdesk/internal/domain/service"
	"draftdesk/internal/errors"

	"github.com/google/uuid"
)

// localHTTPPublisher forwards snapshots by POSTing Pub/Sub-style push
// envelopes to a local endpoint. Development stand-in for the Google
// transport.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// pushEnvelope mimics the format Google Pub/Sub uses when pushing to HTTP
// endpoints, so the receiving handler serves both transports.
type pushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a snapshot publisher for development.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.SnapshotPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishSnapshot sends the snapshot to the local endpoint.
func (p *localHTTPPublisher) PublishSnapshot(ctx context.Context, snapshot *service.PortfolioSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return errors.WithStack(err)
	}

	var envelope pushEnvelope
	envelope.Subscription = "projects/local/subscriptions/portfolio-sub"
	envelope.Message.Data = base64.StdEncoding.EncodeToString(payload)
	envelope.Message.MessageID = uuid.NewString()
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	envelope.Message.Attributes = map[string]string{
		"origin": snapshot.Origin,
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[LocalBroadcast] Publishing snapshot",
		slog.String("endpoint", p.endpoint),
		slog.Int("item_count", len(snapshot.Items)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to post snapshot to local endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("local endpoint returned status %d", resp.StatusCode)
	}

	return nil
}

// Close is a no-op; the local publisher holds no transport resources.
func (p *localHTTPPublisher) Close() error {
	return nil
}

// DecodePushEnvelope unwraps a push-delivered snapshot. Used by the HTTP
// handler that receives local or Google push messages.
func DecodePushEnvelope(body []byte) (*service.PortfolioSnapshot, error) {
	var envelope pushEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode push envelope")
	}

	payload, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode push message data")
	}

	var snapshot service.PortfolioSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to decode portfolio snapshot")
	}

	return &snapshot, nil
}
