package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"github.com/schedbank/schedule-notify/internal/observability"
)

// Config controls whether and where schedule notifications are published.
// A disabled flag or an empty queue URL turns every notify call into a no-op.
type Config struct {
	QueueURL string
	Enabled  bool
}

// MessageAPI is the slice of the SQS client the dispatcher needs.
type MessageAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Dispatcher publishes schedule change events to SQS. It implements
// port.ScheduleNotifier: every failure class ends in a log line and a metric,
// never in an error returned to the caller.
type Dispatcher struct {
	api     MessageAPI
	cfg     Config
	logger  *zap.Logger
	metrics *observability.Metrics
	marshal func(any) ([]byte, error)
}

func NewDispatcher(api MessageAPI, cfg Config, logger *zap.Logger, metrics *observability.Metrics) *Dispatcher {
	return &Dispatcher{
		api:     api,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		marshal: json.Marshal,
	}
}

// NotifySchedule publishes a change event for one schedule. Course fields are
// included in the body only when non-nil.
func (d *Dispatcher) NotifySchedule(ctx context.Context, event string, scheduleID int64, courseID *int64, courseName *string) {
	if d.skip(event) {
		return
	}

	payload := ScheduleEvent{
		Event:      event,
		ScheduleID: scheduleID,
		Timestamp:  time.Now().UnixMilli(),
		CourseID:   courseID,
		CourseName: courseName,
	}

	res := d.send(ctx, payload)
	d.report(event, res,
		zap.String("event", event),
		zap.Int64("schedule_id", scheduleID),
	)
}

// NotifyBatch publishes one event covering scheduleCount schedules. A zero
// count is still a valid message.
func (d *Dispatcher) NotifyBatch(ctx context.Context, event string, scheduleCount int) {
	if d.skip(event) {
		return
	}

	payload := BatchEvent{
		Event:         event,
		ScheduleCount: scheduleCount,
		Timestamp:     time.Now().UnixMilli(),
	}

	res := d.send(ctx, payload)
	d.report(event, res,
		zap.String("event", event),
		zap.Int("schedule_count", scheduleCount),
	)
}

// sendResult is consumed only by report; the notify methods themselves have
// no error path.
type sendResult struct {
	messageID string
	reason    string // empty on success, otherwise an observability.Reason* value
	err       error
}

func (d *Dispatcher) skip(event string) bool {
	if d.cfg.Enabled && d.cfg.QueueURL != "" {
		return false
	}
	d.metrics.RecordSkipped(event)
	d.logger.Info("schedule notifications disabled or queue url not configured, skipping",
		zap.String("event", event))
	return true
}

func (d *Dispatcher) send(ctx context.Context, payload any) sendResult {
	body, err := d.marshal(payload)
	if err != nil {
		return sendResult{reason: observability.ReasonSerialize, err: err}
	}

	out, err := d.api.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(d.cfg.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return sendResult{reason: observability.ReasonService, err: err}
		}
		return sendResult{reason: observability.ReasonUnknown, err: err}
	}

	return sendResult{messageID: aws.ToString(out.MessageId)}
}

func (d *Dispatcher) report(event string, res sendResult, fields ...zap.Field) {
	switch res.reason {
	case "":
		d.metrics.RecordSent(event)
		d.logger.Info("schedule notification sent",
			append(fields, zap.String("message_id", res.messageID))...)
	case observability.ReasonSerialize:
		d.metrics.RecordFailed(event, res.reason)
		d.logger.Error("failed to serialize schedule notification",
			append(fields, zap.Error(res.err))...)
	case observability.ReasonService:
		var apiErr smithy.APIError
		errors.As(res.err, &apiErr)
		d.metrics.RecordFailed(event, res.reason)
		d.logger.Error("queue service rejected schedule notification",
			append(fields,
				zap.String("error_code", apiErr.ErrorCode()),
				zap.String("error_message", apiErr.ErrorMessage()),
			)...)
	default:
		d.metrics.RecordFailed(event, res.reason)
		d.logger.Error("unexpected error sending schedule notification",
			append(fields, zap.Error(res.err))...)
	}
}
