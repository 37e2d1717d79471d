package repos

import (
	"github.com/jmoiron/sqlx"

	"hemline/internal/domain"
)

type AllocationRepo struct{ db *sqlx.DB }

func NewAllocationRepo(db *sqlx.DB) *AllocationRepo { return &AllocationRepo{db: db} }

// UpsertQty sets the allocated quantity for (garmentID, sizeID), creating
// the row if needed. Re-submitting a pair replaces the quantity; there is
// never more than one row per pair.
func (r *AllocationRepo) UpsertQty(garmentID, sizeID string, qty int) error {
	_, err := r.db.Exec(`
		INSERT INTO garment_sizes(garment_id, size_id, qty, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(garment_id, size_id) DO UPDATE
		  SET qty = excluded.qty, updated_at = CURRENT_TIMESTAMP
	`, garmentID, sizeID, qty)
	return err
}

// StockTotal returns the declared total stock for a garment. Missing
// garments surface as sql.ErrNoRows.
func (r *AllocationRepo) StockTotal(garmentID string) (int, error) {
	var total int
	err := r.db.Get(&total, `SELECT stock_total FROM garments WHERE id = ?`, garmentID)
	return total, err
}

// Assigned returns the sum of allocated quantities across all sizes.
func (r *AllocationRepo) Assigned(garmentID string) (int, error) {
	var sum int
	err := r.db.Get(&sum, `
		SELECT COALESCE(SUM(qty), 0) FROM garment_sizes WHERE garment_id = ?
	`, garmentID)
	return sum, err
}

// AssignedSizes lists the per-size allocations joined with size display
// fields, in the sizes' declared order.
func (r *AllocationRepo) AssignedSizes(garmentID string) ([]domain.AllocatedSize, error) {
	var rows []domain.AllocatedSize
	err := r.db.Select(&rows, `
		SELECT gs.size_id, s.name AS size_name, s.description, gs.qty
		FROM garment_sizes gs
		JOIN sizes s ON s.id = gs.size_id
		WHERE gs.garment_id = ?
		ORDER BY s.display_order, s.id
	`, garmentID)
	return rows, err
}
