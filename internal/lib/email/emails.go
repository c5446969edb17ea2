package email

import (
	"context"
	"fmt"
)

// ParcelCreated is the data of a parcel registration notice.
type ParcelCreated struct {
	ParcelID           int64
	TrackingNumber     string
	Status             string
	SenderName         string
	RecipientName      string
	Province           string
	Region             string
	DistributionCenter string
}

// SendParcelCreatedEmail notifies the sorting desk that a parcel was registered.
func (c *Client) SendParcelCreatedEmail(ctx context.Context, to string, p ParcelCreated) error {
	data := map[string]string{
		"ParcelID":           fmt.Sprintf("%d", p.ParcelID),
		"TrackingNumber":     p.TrackingNumber,
		"Status":             p.Status,
		"SenderName":         p.SenderName,
		"RecipientName":      p.RecipientName,
		"Province":           p.Province,
		"Region":             p.Region,
		"DistributionCenter": p.DistributionCenter,
	}

	return c.SendEmail(
		ctx,
		to,
		fmt.Sprintf("Parcel #%d registered: %s", p.ParcelID, p.Region),
		TemplateParcelCreated,
		data,
	)
}
