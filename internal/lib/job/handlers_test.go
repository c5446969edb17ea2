package job

import (
	"context"
	"errors"
	"testing"

	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/config"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	to   string
	sent []email.ParcelCreated
	err  error
}

func (f *fakeNotifier) SendParcelCreatedEmail(_ context.Context, to string, p email.ParcelCreated) error {
	if f.err != nil {
		return f.err
	}
	f.to = to
	f.sent = append(f.sent, p)
	return nil
}

func newTestService() *JobService {
	logger := zerolog.Nop()
	return &JobService{logger: &logger}
}

func parcelTask(t *testing.T, province string) *asynq.Task {
	t.Helper()

	task, err := NewParcelCreatedTask(ParcelCreatedPayload{
		ParcelID:          5,
		SenderID:          1,
		RecipientID:       2,
		SenderName:        "Alice",
		RecipientName:     "Bob",
		RecipientProvince: province,
		Status:            "Pending",
		TrackingNumber:    "TH5",
	})
	require.NoError(t, err)
	return task
}

func TestNewParcelCreatedTask(t *testing.T) {
	task := parcelTask(t, "ตาก")

	assert.Equal(t, TaskParcelCreated, task.Type())
	assert.JSONEq(t, `{
		"parcel_id": 5, "sender_id": 1, "recipient_id": 2,
		"sender_name": "Alice", "recipient_name": "Bob",
		"recipient_province": "ตาก", "status": "Pending", "tracking_number": "TH5"
	}`, string(task.Payload()))
}

func TestHandleParcelCreated_SendsNotification(t *testing.T) {
	svc := newTestService()
	notifier := &fakeNotifier{}
	svc.SetNotifier(notifier, "desk@example.com")

	require.NoError(t, svc.handleParcelCreatedTask(context.Background(), parcelTask(t, "จ.ภูเก็ต")))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "desk@example.com", notifier.to)
	sent := notifier.sent[0]
	assert.EqualValues(t, 5, sent.ParcelID)
	assert.Equal(t, "ภาคใต้", sent.Region)
	assert.Equal(t, "ศูนย์กระจายสินค้าภาคใต้ (สงขลา)", sent.DistributionCenter)
	assert.Equal(t, "TH5", sent.TrackingNumber)
}

func TestHandleParcelCreated_UnknownProvince(t *testing.T) {
	svc := newTestService()
	notifier := &fakeNotifier{}
	svc.SetNotifier(notifier, "desk@example.com")

	require.NoError(t, svc.handleParcelCreatedTask(context.Background(), parcelTask(t, "")))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "ไม่ระบุภาค", notifier.sent[0].Region)
}

func TestHandleParcelCreated_WithoutNotifier(t *testing.T) {
	svc := newTestService()

	assert.NoError(t, svc.handleParcelCreatedTask(context.Background(), parcelTask(t, "ระยอง")))
}

func TestHandleParcelCreated_NotifierErrorRetries(t *testing.T) {
	svc := newTestService()
	svc.SetNotifier(&fakeNotifier{err: errors.New("provider down")}, "desk@example.com")

	err := svc.handleParcelCreatedTask(context.Background(), parcelTask(t, "ระยอง"))

	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleParcelCreated_BadPayloadSkipsRetry(t *testing.T) {
	svc := newTestService()

	err := svc.handleParcelCreatedTask(context.Background(), asynq.NewTask(TaskParcelCreated, []byte("{")))

	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestInitHandlers(t *testing.T) {
	logger := zerolog.Nop()

	svc := newTestService()
	svc.InitHandlers(&config.Config{}, &logger)
	assert.Nil(t, svc.notifier)

	svc.InitHandlers(&config.Config{Integration: config.IntegrationConfig{
		ResendAPIKey:      "re_test",
		NotificationEmail: "desk@example.com",
	}}, &logger)
	assert.NotNil(t, svc.notifier)
	assert.Equal(t, "desk@example.com", svc.notifyTo)
}

func TestMux_RoutesParcelCreated(t *testing.T) {
	svc := newTestService()

	err := svc.Mux().ProcessTask(context.Background(), parcelTask(t, "น่าน"))
	assert.NoError(t, err)
}
