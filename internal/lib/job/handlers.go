package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/config"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/lib/email"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/model/parcel"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Notifier delivers parcel notices. *email.Client implements it.
type Notifier interface {
	SendParcelCreatedEmail(ctx context.Context, to string, p email.ParcelCreated) error
}

// InitHandlers wires the handler dependencies. Without Resend credentials
// and a recipient address the worker only logs routing decisions.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	if cfg.Integration.NotificationsEnabled() {
		j.SetNotifier(email.NewClient(cfg, logger), cfg.Integration.NotificationEmail)
	}
}

// SetNotifier replaces the notifier and its recipient address.
func (j *JobService) SetNotifier(n Notifier, to string) {
	j.notifier = n
	j.notifyTo = to
}

// handleParcelCreatedTask resolves the sorting region of the recipient
// province and sends the notice. A returned error makes asynq retry.
func (j *JobService) handleParcelCreatedTask(ctx context.Context, t *asynq.Task) error {
	var p ParcelCreatedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal parcel created payload: %w: %w", err, asynq.SkipRetry)
	}

	region := parcel.RegionOf(p.RecipientProvince)

	log := j.logger.With().
		Str("type", TaskParcelCreated).
		Int64("parcel_id", p.ParcelID).
		Str("province", p.RecipientProvince).
		Str("region", string(region)).
		Logger()

	if region == parcel.RegionUnknown {
		log.Warn().Msg("Province not in routing table, parcel needs manual sorting")
	}

	if j.notifier == nil {
		log.Info().
			Str("distribution_center", region.DistributionCenter()).
			Msg("Parcel routed")
		return nil
	}

	err := j.notifier.SendParcelCreatedEmail(ctx, j.notifyTo, email.ParcelCreated{
		ParcelID:           p.ParcelID,
		TrackingNumber:     p.TrackingNumber,
		Status:             p.Status,
		SenderName:         p.SenderName,
		RecipientName:      p.RecipientName,
		Province:           p.RecipientProvince,
		Region:             region.Label(),
		DistributionCenter: region.DistributionCenter(),
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to send parcel notification")
		return err
	}

	log.Info().Msg("Successfully sent parcel notification")
	return nil
}
