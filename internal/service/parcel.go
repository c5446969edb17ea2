package service

import (
	"context"

	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/lib/job"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/model/parcel"
	"github.com/rs/zerolog"
)

// ParcelStore persists parcels. *repository.ParcelRepository implements it.
type ParcelStore interface {
	CreateParcel(ctx context.Context, p *parcel.NewParcel) (*parcel.Created, error)
}

// ParcelEnqueuer queues post-commit work. *job.JobService implements it.
type ParcelEnqueuer interface {
	EnqueueParcelCreated(ctx context.Context, p job.ParcelCreatedPayload) error
}

type ParcelService struct {
	store ParcelStore
	jobs  ParcelEnqueuer
}

// NewParcelService builds the service. jobs may be nil when background jobs are disabled.
func NewParcelService(store ParcelStore, jobs ParcelEnqueuer) *ParcelService {
	return &ParcelService{
		store: store,
		jobs:  jobs,
	}
}

// CreateParcel stores the parcel and its parties in one transaction, then
// queues the routing notification. Queue failures are logged, never returned:
// the parcel is already committed.
func (s *ParcelService) CreateParcel(ctx context.Context, req *parcel.CreateParcelRequest) (*parcel.CreateParcelResponse, error) {
	logger := zerolog.Ctx(ctx)
	np := req.ToNewParcel()

	if np.TrackingNumber != "" {
		logger.Info().Str("tracking_number", np.TrackingNumber).Msg("tracking number received, not persisted")
	}

	created, err := s.store.CreateParcel(ctx, np)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("parcel_id", created.ParcelID).
		Int64("sender_id", created.SenderID).
		Int64("recipient_id", created.RecipientID).
		Msg("parcel created")

	if s.jobs != nil {
		err := s.jobs.EnqueueParcelCreated(ctx, job.ParcelCreatedPayload{
			ParcelID:          created.ParcelID,
			SenderID:          created.SenderID,
			RecipientID:       created.RecipientID,
			SenderName:        np.Sender.Name,
			RecipientName:     np.Recipient.Name,
			RecipientProvince: np.Recipient.Province,
			Status:            np.Status,
			TrackingNumber:    np.TrackingNumber,
		})
		if err != nil {
			logger.Warn().Err(err).Int64("parcel_id", created.ParcelID).Msg("failed to enqueue parcel notification")
		}
	}

	return parcel.NewCreateParcelResponse(created), nil
}

// GetParcel is not implemented: it always answers success=false.
func (s *ParcelService) GetParcel(ctx context.Context, req *parcel.GetParcelRequest) (*parcel.GetParcelResponse, error) {
	zerolog.Ctx(ctx).Debug().Str("tracking_number", string(req.TrackingNumber)).Msg("get_parcel requested")

	return &parcel.GetParcelResponse{
		Success: false,
		Message: parcel.MessageNotImplemented,
	}, nil
}
