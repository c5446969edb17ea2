package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskParcelCreated is enqueued after a parcel transaction commits.
	TaskParcelCreated = "parcel:created"
)

// ParcelCreatedPayload is the JSON payload of TaskParcelCreated.
type ParcelCreatedPayload struct {
	ParcelID          int64  `json:"parcel_id"`
	SenderID          int64  `json:"sender_id"`
	RecipientID       int64  `json:"recipient_id"`
	SenderName        string `json:"sender_name"`
	RecipientName     string `json:"recipient_name"`
	RecipientProvince string `json:"recipient_province"`
	Status            string `json:"status"`
	TrackingNumber    string `json:"tracking_number,omitempty"`
}

// NewParcelCreatedTask builds the task: 3 retries on the default queue,
// 30 second handler timeout.
func NewParcelCreatedTask(p ParcelCreatedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskParcelCreated,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
