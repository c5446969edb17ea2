//go:build integration

package repository

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/database"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/model/parcel"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/sqlerr"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func setupPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("parcels"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	logger := zerolog.Nop()
	require.NoError(t, database.RunMigrations(ctx, &logger, dsn))

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow("SELECT count(*) FROM "+table).Scan(&n))
	return n
}

func TestParcelRepository_Integration(t *testing.T) {
	db := setupPostgres(t)
	repo := NewParcelRepository(db)
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		p := &parcel.NewParcel{
			Sender:    parcel.Contact{Name: "สมชาย", Phone: "0812345678", AddressDetails: "99/1", Province: "ชลบุรี"},
			Recipient: parcel.Contact{Name: "", Phone: "", AddressDetails: "", Province: "เชียงใหม่"},
			Status:    "Pending",
		}

		created, err := repo.CreateParcel(ctx, p)
		require.NoError(t, err)

		var senderID, recipientID int64
		var status string
		err = db.QueryRow(`SELECT sender_id, recipient_id, status FROM bao_parcels WHERE id = $1`, created.ParcelID).
			Scan(&senderID, &recipientID, &status)
		require.NoError(t, err)
		assert.Equal(t, created.SenderID, senderID)
		assert.Equal(t, created.RecipientID, recipientID)
		assert.Equal(t, "Pending", status)

		var name, province string
		err = db.QueryRow(`SELECT name, province FROM bao_senders WHERE id = $1`, created.SenderID).Scan(&name, &province)
		require.NoError(t, err)
		assert.Equal(t, "สมชาย", name)
		assert.Equal(t, "ชลบุรี", province)
	})

	t.Run("failed parcel insert leaves no rows", func(t *testing.T) {
		senders := countRows(t, db, "bao_senders")
		recipients := countRows(t, db, "bao_recipients")
		parcels := countRows(t, db, "bao_parcels")

		p := &parcel.NewParcel{
			Sender:    parcel.Contact{Name: "a", Phone: "1", AddressDetails: "x", Province: "ระยอง"},
			Recipient: parcel.Contact{Name: "b", Phone: "2", AddressDetails: "y", Province: "ตาก"},
			Status:    strings.Repeat("s", 51),
		}

		_, err := repo.CreateParcel(ctx, p)
		require.Error(t, err)
		assert.Equal(t, sqlerr.StringDataRightTruncation, sqlerr.ErrCode(err))

		assert.Equal(t, senders, countRows(t, db, "bao_senders"))
		assert.Equal(t, recipients, countRows(t, db, "bao_recipients"))
		assert.Equal(t, parcels, countRows(t, db, "bao_parcels"))
	})
}
