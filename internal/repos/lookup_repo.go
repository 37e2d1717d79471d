package repos

import (
	"github.com/jmoiron/sqlx"

	"hemline/internal/domain"
)

// LookupRepo serves the closed reference tables: categories, sizes,
// colors, statuses, payment methods.
type LookupRepo struct{ db *sqlx.DB }

func NewLookupRepo(db *sqlx.DB) *LookupRepo { return &LookupRepo{db: db} }

func (r *LookupRepo) Categories() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `SELECT id, name, created_at FROM categories ORDER BY name`)
	return out, err
}

func (r *LookupRepo) Sizes() ([]domain.Size, error) {
	var out []domain.Size
	err := r.db.Select(&out, `SELECT id, name, description, display_order FROM sizes ORDER BY display_order, id`)
	return out, err
}

func (r *LookupRepo) Colors() ([]domain.Color, error) {
	var out []domain.Color
	err := r.db.Select(&out, `SELECT id, name FROM colors ORDER BY name`)
	return out, err
}

func (r *LookupRepo) PaymentMethods() ([]domain.PaymentMethod, error) {
	var out []domain.PaymentMethod
	err := r.db.Select(&out, `SELECT id, name FROM payment_methods ORDER BY id`)
	return out, err
}

// StatusExists reports whether a status id belongs to the closed set.
func (r *LookupRepo) StatusExists(statusID string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM statuses WHERE id = ?`, statusID); err != nil {
		return false, err
	}
	return n > 0, nil
}

// ColorExists reports whether a color id belongs to the closed set.
func (r *LookupRepo) ColorExists(colorID string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM colors WHERE id = ?`, colorID); err != nil {
		return false, err
	}
	return n > 0, nil
}
