package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/config"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/database"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/handler"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/middleware"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/model/parcel"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/server"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "router-test-key"

type stubStore struct{}

func (stubStore) CreateParcel(ctx context.Context, p *parcel.NewParcel) (*parcel.Created, error) {
	return &parcel.Created{ParcelID: 10, SenderID: 11, RecipientID: 12}, nil
}

func newTestRouter(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "development"},
			Auth:          config.AuthConfig{APIKey: testKey},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
		DB:     &database.Database{DB: db},
	}

	services := &service.Services{
		Auth:   service.NewAuthServiceWithKey(testKey),
		Parcel: service.NewParcelService(stubStore{}, nil),
	}

	return NewRouter(s, handler.NewHandlers(s, services), services), mock
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_CreateParcel(t *testing.T) {
	e, _ := newTestRouter(t)

	body := `{"action":"create_parcel",` +
		`"sender":{"name":"A","phone":"111","address_details":"X","province":"P1"},` +
		`"recipient":{"name":"B","phone":"222","address_details":"Y","province":"P2"},` +
		`"parcel":{"status":"pending"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/parcels", strings.NewReader(body))
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testKey)

	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"success":true,"message":"Parcel created successfully","parcel_id":10,"sender_id":11,"recipient_id":12}`,
		rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
}

func TestRouter_APIRequiresKey(t *testing.T) {
	e, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/parcels", strings.NewReader(`{"action":"get_parcel"}`))

	rec := serve(e, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid API Key"}`, rec.Body.String())
}

func TestRouter_StatusIsPublic(t *testing.T) {
	e, mock := newTestRouter(t)
	mock.ExpectPing()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_UnknownRoute(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Route not found"}`, rec.Body.String())
}

func TestRouter_StaticDocs(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/static/openapi.json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/parcels")

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/docs", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RequestIDIsEchoed(t *testing.T) {
	e, mock := newTestRouter(t)
	mock.ExpectPing()

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")

	rec := serve(e, req)

	assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
}
