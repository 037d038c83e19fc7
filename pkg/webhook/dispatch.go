package webhook

import (
	"context"

	"go.uber.org/zap"

	"github.com/ccollicutt/extcmd/pkg/config"
	"github.com/ccollicutt/extcmd/pkg/output"
)

// Delivery records the outcome of one webhook send.
type Delivery struct {
	Name     string
	Response *Response
}

// Dispatcher sends a report to every configured webhook whose trigger
// matches. Failed deliveries are logged and returned; they never abort the
// remaining sends.
type Dispatcher struct {
	client *Client
	logger *zap.Logger
}

// NewDispatcher creates a dispatcher. A nil client or logger gets a default.
func NewDispatcher(client *Client, logger *zap.Logger) *Dispatcher {
	if client == nil {
		client = NewClient()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{client: client, logger: logger.Named("webhook")}
}

// Dispatch sends report to hooks in order and returns one Delivery per
// webhook that fired.
func (d *Dispatcher) Dispatch(ctx context.Context, hooks []config.WebhookConfig, report *output.Report) []Delivery {
	var deliveries []Delivery

	for _, wh := range hooks {
		if !ShouldFire(wh.Trigger, report.HasIssues()) {
			d.logger.Debug("webhook skipped", zap.String("url", wh.URL), zap.String("trigger", string(wh.Trigger)))
			continue
		}

		resp := d.client.Send(ctx, report, SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			d.logger.Info("webhook sent",
				zap.String("name", name),
				zap.Int("status", resp.StatusCode),
				zap.Duration("duration", resp.Duration),
				zap.String("run_id", report.Metadata.RunID))
		} else {
			d.logger.Warn("webhook failed",
				zap.String("name", name),
				zap.Int("status", resp.StatusCode),
				zap.Error(resp.Error))
		}

		deliveries = append(deliveries, Delivery{Name: name, Response: resp})
	}

	return deliveries
}

// ShouldFire reports whether a webhook with the given trigger fires for a
// report. Unset or unrecognized triggers behave like on_issues.
func ShouldFire(trigger config.WebhookTrigger, hasIssues bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	default:
		return hasIssues
	}
}
