package email

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmails struct {
	resend.EmailsSvc
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeEmails) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func TestRender_PreviewData(t *testing.T) {
	for name, data := range PreviewData {
		t.Run(string(name), func(t *testing.T) {
			body, err := Render(name, data)
			require.NoError(t, err)
			for _, v := range data {
				assert.Contains(t, body, v)
			}
		})
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render("missing", nil)
	assert.Error(t, err)
}

func TestSendParcelCreatedEmail(t *testing.T) {
	fake := &fakeEmails{}
	logger := zerolog.Nop()
	client := NewClientWithService(fake, "Parcel Intake <intake@example.com>", &logger)

	err := client.SendParcelCreatedEmail(context.Background(), "desk@example.com", ParcelCreated{
		ParcelID:           7,
		Status:             "Pending",
		RecipientName:      "Bob",
		Province:           "ระยอง",
		Region:             "ภาคตะวันออก",
		DistributionCenter: "ศูนย์กระจายสินค้าภาคตะวันออก (ชลบุรี)",
	})
	require.NoError(t, err)

	require.Len(t, fake.sent, 1)
	sent := fake.sent[0]
	assert.Equal(t, "Parcel Intake <intake@example.com>", sent.From)
	assert.Equal(t, []string{"desk@example.com"}, sent.To)
	assert.Equal(t, "Parcel #7 registered: ภาคตะวันออก", sent.Subject)
	assert.Contains(t, sent.Html, "ระยอง")
	assert.Contains(t, sent.Html, "Parcel #7 registered")
}

func TestSendEmail_ProviderError(t *testing.T) {
	fake := &fakeEmails{err: errors.New("rate limited")}
	logger := zerolog.Nop()
	client := NewClientWithService(fake, "from@example.com", &logger)

	err := client.SendParcelCreatedEmail(context.Background(), "desk@example.com", ParcelCreated{ParcelID: 1})
	assert.ErrorContains(t, err, "rate limited")
}
