package parcel

import (
	"bytes"
	"encoding/json"

	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/validation"
)

// Action names accepted by the parcel endpoint.
const (
	ActionCreateParcel = "create_parcel"
	ActionGetParcel    = "get_parcel"
)

const (
	MessageCreated        = "Parcel created successfully"
	MessageNotImplemented = "Not implemented yet"
)

// ------------------------------------------------------------

// ContactInput is a sender or recipient as sent by the client.
// Pointers separate an absent key (rejected) from an empty string (accepted).
type ContactInput struct {
	Name           *string `json:"name" validate:"required,max=255"`
	Phone          *string `json:"phone" validate:"required,max=50"`
	AddressDetails *string `json:"address_details" validate:"required"`
	Province       *string `json:"province" validate:"required,max=100"`
}

func (c *ContactInput) toContact() Contact {
	return Contact{
		Name:           deref(c.Name),
		Phone:          deref(c.Phone),
		AddressDetails: deref(c.AddressDetails),
		Province:       deref(c.Province),
	}
}

type ParcelInput struct {
	Status         *string        `json:"status" validate:"required,max=50"`
	TrackingNumber TrackingNumber `json:"tracking_number"`
}

type CreateParcelRequest struct {
	Sender    *ContactInput `json:"sender" validate:"required"`
	Recipient *ContactInput `json:"recipient" validate:"required"`
	Parcel    *ParcelInput  `json:"parcel" validate:"required"`
}

func (r *CreateParcelRequest) Validate() error {
	return validation.Struct(r)
}

// ToNewParcel converts a validated request into the record to insert.
func (r *CreateParcelRequest) ToNewParcel() *NewParcel {
	return &NewParcel{
		Sender:         r.Sender.toContact(),
		Recipient:      r.Recipient.toContact(),
		Status:         deref(r.Parcel.Status),
		TrackingNumber: string(r.Parcel.TrackingNumber),
	}
}

type CreateParcelResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ParcelID    int64  `json:"parcel_id"`
	SenderID    int64  `json:"sender_id"`
	RecipientID int64  `json:"recipient_id"`
}

func NewCreateParcelResponse(created *Created) *CreateParcelResponse {
	return &CreateParcelResponse{
		Success:     true,
		Message:     MessageCreated,
		ParcelID:    created.ParcelID,
		SenderID:    created.SenderID,
		RecipientID: created.RecipientID,
	}
}

// ------------------------------------------------------------

type GetParcelRequest struct {
	TrackingNumber TrackingNumber `json:"tracking_number"`
}

func (r *GetParcelRequest) Validate() error {
	return nil
}

type GetParcelResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ------------------------------------------------------------

// TrackingNumber accepts any JSON value. Strings are unquoted, null is
// empty, and every other value keeps its compact JSON text, so 12345 becomes
// "12345" and ["TH1"] stays ["TH1"].
type TrackingNumber string

func (t *TrackingNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = TrackingNumber(s)
		return nil
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return err
	}
	*t = TrackingNumber(compact.String())
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
