// Package parcel holds the parcel intake domain types: the records
// written by create_parcel, the request/response payloads of the
// action endpoint, and the province routing table.
package parcel

// Contact is a sender or recipient row.
type Contact struct {
	Name           string
	Phone          string
	AddressDetails string
	Province       string
}

// NewParcel is everything create_parcel writes in one transaction.
type NewParcel struct {
	Sender    Contact
	Recipient Contact
	Status    string

	// TrackingNumber is informational; the schema has no column for it.
	TrackingNumber string
}

// Created carries the identifiers generated for a new parcel.
type Created struct {
	ParcelID    int64
	SenderID    int64
	RecipientID int64
}
