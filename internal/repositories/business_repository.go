package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aviadn777/qflow-stripe-glow/internal/models"
)

// BusinessRepository reads the businesses collection and its services join.
// It owns the server-side half of discovery filtering; price and rating
// narrowing happen in the service layer after the fetch.
type BusinessRepository struct {
	DB *sql.DB
}

const businessColumns = `
		b.id, b.name, COALESCE(b.name_he, ''), COALESCE(b.type, ''), COALESCE(b.city, ''),
		COALESCE(b.address, ''), COALESCE(b.phone, ''), COALESCE(b.description, ''),
		COALESCE(b.description_he, ''), b.services_offered, COALESCE(b.staff_count, 0),
		b.opening_hours, COALESCE(b.subscription_status, ''), b.created_at`

// FetchVerified returns verified businesses with an active or trial
// subscription, narrowed by city membership and business type when the
// filters constrain them. Joined services are loaded with a second query.
func (r *BusinessRepository) FetchVerified(ctx context.Context, filters models.SearchFilters) ([]models.Business, error) {
	var (
		params     []interface{}
		conditions []string
	)

	conditions = append(conditions, "b.is_verified = 1")
	conditions = append(conditions, "b.subscription_status IN (?, ?)")
	params = append(params, "active", "trial")

	if !filters.UnconstrainedLocation() {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(filters.Location)), ",")
		conditions = append(conditions, fmt.Sprintf("b.city IN (%s)", placeholders))
		for _, city := range filters.Location {
			params = append(params, city)
		}
	}

	if filters.BusinessType != "" && filters.BusinessType != models.BusinessTypeAll {
		conditions = append(conditions, "b.type = ?")
		params = append(params, filters.BusinessType)
	}

	query := `SELECT` + businessColumns + `
		FROM businesses b
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY b.created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var businesses []models.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachServices(ctx, businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}

// GetBusinessByID returns one business with its active services.
func (r *BusinessRepository) GetBusinessByID(ctx context.Context, id string) (models.Business, error) {
	query := `SELECT` + businessColumns + `
		FROM businesses b
		WHERE b.id = ?`

	row := r.DB.QueryRowContext(ctx, query, id)
	b, err := scanBusiness(row)
	if err == sql.ErrNoRows {
		return models.Business{}, models.ErrBusinessNotFound
	}
	if err != nil {
		return models.Business{}, err
	}

	list := []models.Business{b}
	if err := r.attachServices(ctx, list); err != nil {
		return models.Business{}, err
	}
	return list[0], nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBusiness(row rowScanner) (models.Business, error) {
	var (
		b           models.Business
		offeredJSON sql.NullString
		openingJSON sql.NullString
	)
	err := row.Scan(
		&b.ID, &b.Name, &b.NameHe, &b.Type, &b.City,
		&b.Address, &b.Phone, &b.Description,
		&b.DescriptionHe, &offeredJSON, &b.StaffCount,
		&openingJSON, &b.SubscriptionStatus, &b.CreatedAt,
	)
	if err != nil {
		return models.Business{}, err
	}
	b.IsVerified = true

	if offeredJSON.Valid && offeredJSON.String != "" {
		if err := json.Unmarshal([]byte(offeredJSON.String), &b.ServicesOffered); err != nil {
			return models.Business{}, fmt.Errorf("services_offered for business %s: %w", b.ID, err)
		}
	}
	if openingJSON.Valid && openingJSON.String != "" {
		if err := json.Unmarshal([]byte(openingJSON.String), &b.OpeningHours); err != nil {
			return models.Business{}, fmt.Errorf("opening_hours for business %s: %w", b.ID, err)
		}
	}
	return b, nil
}

// attachServices loads non-deleted services for the given businesses in one
// query and distributes them by business id.
func (r *BusinessRepository) attachServices(ctx context.Context, businesses []models.Business) error {
	if len(businesses) == 0 {
		return nil
	}

	params := make([]interface{}, 0, len(businesses))
	for _, b := range businesses {
		params = append(params, b.ID)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(businesses)), ",")

	query := fmt.Sprintf(`
		SELECT s.id, s.business_id, s.name, COALESCE(s.name_he, ''),
			COALESCE(s.description, ''), COALESCE(s.description_he, ''),
			COALESCE(s.duration, 0), s.price, COALESCE(s.category, ''), s.is_active
		FROM services s
		WHERE s.is_active = 1 AND s.business_id IN (%s)`, placeholders)

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return err
	}
	defer rows.Close()

	byBusiness := make(map[string][]models.Service, len(businesses))
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(
			&s.ID, &s.BusinessID, &s.Name, &s.NameHe,
			&s.Description, &s.DescriptionHe,
			&s.Duration, &s.Price, &s.Category, &s.IsActive,
		); err != nil {
			return err
		}
		byBusiness[s.BusinessID] = append(byBusiness[s.BusinessID], s)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range businesses {
		businesses[i].Services = byBusiness[businesses[i].ID]
	}
	return nil
}
