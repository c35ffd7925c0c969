package repositories

import (
	"context"
	"database/sql"
)

// ReviewAggregateRepository reads aggregated review data per business.
type ReviewAggregateRepository struct {
	DB *sql.DB
}

// BusinessRating returns the average rating and review count for a business.
// A business with no reviews yields (0, 0, nil).
func (r *ReviewAggregateRepository) BusinessRating(ctx context.Context, businessID string) (float64, int, error) {
	query := `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE business_id = ?`

	var (
		avg   sql.NullFloat64
		count int
	)
	if err := r.DB.QueryRowContext(ctx, query, businessID).Scan(&avg, &count); err != nil {
		return 0, 0, err
	}
	if !avg.Valid {
		return 0, count, nil
	}
	return avg.Float64, count, nil
}
