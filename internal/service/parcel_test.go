package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/lib/job"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/model/parcel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) CreateParcel(ctx context.Context, p *parcel.NewParcel) (*parcel.Created, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(*parcel.Created)
	return created, args.Error(1)
}

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) EnqueueParcelCreated(ctx context.Context, p job.ParcelCreatedPayload) error {
	return m.Called(ctx, p).Error(0)
}

func strPtr(s string) *string { return &s }

func createRequest() *parcel.CreateParcelRequest {
	contact := func(name, province string) *parcel.ContactInput {
		return &parcel.ContactInput{
			Name:           strPtr(name),
			Phone:          strPtr("0800000000"),
			AddressDetails: strPtr("1 Road"),
			Province:       strPtr(province),
		}
	}

	return &parcel.CreateParcelRequest{
		Sender:    contact("Alice", "ชลบุรี"),
		Recipient: contact("Bob", "ตาก"),
		Parcel:    &parcel.ParcelInput{Status: strPtr("Pending"), TrackingNumber: "TH9"},
	}
}

func TestParcelService_CreateParcel(t *testing.T) {
	store := &mockStore{}
	jobs := &mockEnqueuer{}
	svc := NewParcelService(store, jobs)

	store.On("CreateParcel", mock.Anything, mock.MatchedBy(func(p *parcel.NewParcel) bool {
		return p.Sender.Name == "Alice" && p.Recipient.Province == "ตาก" && p.Status == "Pending"
	})).Return(&parcel.Created{ParcelID: 3, SenderID: 1, RecipientID: 2}, nil)

	jobs.On("EnqueueParcelCreated", mock.Anything, job.ParcelCreatedPayload{
		ParcelID:          3,
		SenderID:          1,
		RecipientID:       2,
		SenderName:        "Alice",
		RecipientName:     "Bob",
		RecipientProvince: "ตาก",
		Status:            "Pending",
		TrackingNumber:    "TH9",
	}).Return(nil)

	res, err := svc.CreateParcel(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, &parcel.CreateParcelResponse{
		Success:     true,
		Message:     "Parcel created successfully",
		ParcelID:    3,
		SenderID:    1,
		RecipientID: 2,
	}, res)
	store.AssertExpectations(t)
	jobs.AssertExpectations(t)
}

func TestParcelService_CreateParcel_StoreError(t *testing.T) {
	store := &mockStore{}
	jobs := &mockEnqueuer{}
	svc := NewParcelService(store, jobs)

	storeErr := errors.New("insert parcel: boom")
	store.On("CreateParcel", mock.Anything, mock.Anything).Return(nil, storeErr)

	res, err := svc.CreateParcel(context.Background(), createRequest())

	assert.Nil(t, res)
	assert.ErrorIs(t, err, storeErr)
	jobs.AssertNotCalled(t, "EnqueueParcelCreated", mock.Anything, mock.Anything)
}

func TestParcelService_CreateParcel_EnqueueErrorIsNotFatal(t *testing.T) {
	store := &mockStore{}
	jobs := &mockEnqueuer{}
	svc := NewParcelService(store, jobs)

	store.On("CreateParcel", mock.Anything, mock.Anything).Return(&parcel.Created{ParcelID: 1, SenderID: 1, RecipientID: 1}, nil)
	jobs.On("EnqueueParcelCreated", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	res, err := svc.CreateParcel(context.Background(), createRequest())

	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestParcelService_CreateParcel_WithoutJobs(t *testing.T) {
	store := &mockStore{}
	svc := NewParcelService(store, nil)

	store.On("CreateParcel", mock.Anything, mock.Anything).Return(&parcel.Created{ParcelID: 9, SenderID: 8, RecipientID: 7}, nil)

	res, err := svc.CreateParcel(context.Background(), createRequest())

	require.NoError(t, err)
	assert.EqualValues(t, 9, res.ParcelID)
}

func TestParcelService_GetParcel(t *testing.T) {
	svc := NewParcelService(&mockStore{}, nil)

	res, err := svc.GetParcel(context.Background(), &parcel.GetParcelRequest{TrackingNumber: "TH1"})

	require.NoError(t, err)
	assert.Equal(t, &parcel.GetParcelResponse{Success: false, Message: "Not implemented yet"}, res)
}
