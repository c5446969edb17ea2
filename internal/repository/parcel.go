package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/model/parcel"
)

const (
	insertSenderSQL = `INSERT INTO bao_senders (name, phone, address_details, province)
VALUES ($1, $2, $3, $4) RETURNING id`

	insertRecipientSQL = `INSERT INTO bao_recipients (name, phone, address_details, province)
VALUES ($1, $2, $3, $4) RETURNING id`

	insertParcelSQL = `INSERT INTO bao_parcels (sender_id, recipient_id, status)
VALUES ($1, $2, $3) RETURNING id`
)

type ParcelRepository struct {
	db *sql.DB
}

func NewParcelRepository(db *sql.DB) *ParcelRepository {
	return &ParcelRepository{db: db}
}

// CreateParcel inserts the sender, the recipient and the parcel in one
// transaction. Any failure rolls back all three rows.
func (r *ParcelRepository) CreateParcel(ctx context.Context, p *parcel.NewParcel) (created *parcel.Created, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	senderID, err := insertContact(ctx, tx, insertSenderSQL, p.Sender)
	if err != nil {
		return nil, fmt.Errorf("insert sender: %w", err)
	}

	recipientID, err := insertContact(ctx, tx, insertRecipientSQL, p.Recipient)
	if err != nil {
		return nil, fmt.Errorf("insert recipient: %w", err)
	}

	var parcelID int64
	if err = tx.QueryRowContext(ctx, insertParcelSQL, senderID, recipientID, p.Status).Scan(&parcelID); err != nil {
		return nil, fmt.Errorf("insert parcel: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return &parcel.Created{
		ParcelID:    parcelID,
		SenderID:    senderID,
		RecipientID: recipientID,
	}, nil
}

func insertContact(ctx context.Context, tx *sql.Tx, query string, c parcel.Contact) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, query, c.Name, c.Phone, c.AddressDetails, c.Province).Scan(&id)
	return id, err
}
