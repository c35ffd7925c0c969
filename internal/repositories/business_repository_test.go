package repositories

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/aviadn777/qflow-stripe-glow/internal/models"
)

var businessRowColumns = []string{
	"id", "name", "name_he", "type", "city", "address", "phone",
	"description", "description_he", "services_offered", "staff_count",
	"opening_hours", "subscription_status", "created_at",
}

var serviceRowColumns = []string{
	"id", "business_id", "name", "name_he", "description", "description_he",
	"duration", "price", "category", "is_active",
}

func mayaRow(createdAt time.Time) []driver.Value {
	return []driver.Value{
		"11111111-1111-1111-1111-111111111111", "Maya Salon", "סלון מיה", "hair_salon", "Tel Aviv",
		"Dizengoff 1", "+972-3-0000000", "Hair care", "טיפוח שיער",
		`["Haircut","Color"]`, 3,
		`{"monday":"09:00-18:00","saturday":"closed"}`, "active", createdAt,
	}
}

func TestFetchVerifiedUnconstrained(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	createdAt := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	// Exactly two args: the subscription statuses. No city or type predicate
	// may be added for the All/all sentinel values.
	mock.ExpectQuery(`(?s)SELECT.+FROM businesses b.+WHERE b\.is_verified = 1 AND b\.subscription_status IN \(\?, \?\).+ORDER BY b\.created_at DESC`).
		WithArgs("active", "trial").
		WillReturnRows(sqlmock.NewRows(businessRowColumns).AddRow(mayaRow(createdAt)...))

	mock.ExpectQuery(`(?s)SELECT.+FROM services s.+WHERE s\.is_active = 1 AND s\.business_id IN \(\?\)`).
		WithArgs("11111111-1111-1111-1111-111111111111").
		WillReturnRows(sqlmock.NewRows(serviceRowColumns).
			AddRow("svc-1", "11111111-1111-1111-1111-111111111111", "Haircut", "תספורת", "", "", 45, 120.0, "hair", true).
			AddRow("svc-2", "11111111-1111-1111-1111-111111111111", "Color", "צבע", "", "", 90, 250.0, "hair", true))

	repo := BusinessRepository{DB: db}
	got, err := repo.FetchVerified(context.Background(), models.DefaultSearchFilters())
	require.NoError(t, err)
	require.Len(t, got, 1)

	b := got[0]
	require.Equal(t, "סלון מיה", b.NameHe)
	require.Equal(t, []string{"Haircut", "Color"}, b.ServicesOffered)
	require.Equal(t, "09:00-18:00", b.OpeningHours["monday"])
	require.True(t, b.IsVerified)
	require.Len(t, b.Services, 2)
	require.Equal(t, 250.0, b.Services[1].Price)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchVerifiedWithCityAndType(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT.+FROM businesses b.+b\.city IN \(\?,\?\).+b\.type = \?`).
		WithArgs("active", "trial", "Haifa", "Tel Aviv", "hair_salon").
		WillReturnRows(sqlmock.NewRows(businessRowColumns))

	repo := BusinessRepository{DB: db}
	filters := models.SearchFilters{
		Location:     []string{"Haifa", "Tel Aviv"},
		BusinessType: models.BusinessTypeHair,
		PriceRange:   [2]float64{30, 300},
	}

	got, err := repo.FetchVerified(context.Background(), filters)
	require.NoError(t, err)
	require.Empty(t, got)

	// Zero businesses means the services join query must not run.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchVerifiedQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT.+FROM businesses b`).
		WillReturnError(context.DeadlineExceeded)

	repo := BusinessRepository{DB: db}
	_, err = repo.FetchVerified(context.Background(), models.DefaultSearchFilters())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGetBusinessByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT.+FROM businesses b.+WHERE b\.id = \?`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(businessRowColumns))

	repo := BusinessRepository{DB: db}
	_, err = repo.GetBusinessByID(context.Background(), "missing")
	require.ErrorIs(t, err, models.ErrBusinessNotFound)
}

func TestGetBusinessByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	createdAt := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)SELECT.+FROM businesses b.+WHERE b\.id = \?`).
		WithArgs("11111111-1111-1111-1111-111111111111").
		WillReturnRows(sqlmock.NewRows(businessRowColumns).AddRow(mayaRow(createdAt)...))

	mock.ExpectQuery(`(?s)SELECT.+FROM services s`).
		WithArgs("11111111-1111-1111-1111-111111111111").
		WillReturnRows(sqlmock.NewRows(serviceRowColumns).
			AddRow("svc-1", "11111111-1111-1111-1111-111111111111", "Haircut", "תספורת", "", "", 45, 120.0, "hair", true))

	repo := BusinessRepository{DB: db}
	got, err := repo.GetBusinessByID(context.Background(), "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	require.Equal(t, "Maya Salon", got.Name)
	require.Len(t, got.Services, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRating(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\), COUNT\(\*\) FROM reviews WHERE business_id = \?`).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.6, 23))

	repo := ReviewAggregateRepository{DB: db}
	avg, count, err := repo.BusinessRating(context.Background(), "b1")
	require.NoError(t, err)
	require.Equal(t, 4.6, avg)
	require.Equal(t, 23, count)
}
