package repos

import (
	"github.com/jmoiron/sqlx"

	"hemline/internal/domain"
)

type VariantRepo struct{ db *sqlx.DB }

func NewVariantRepo(db *sqlx.DB) *VariantRepo { return &VariantRepo{db: db} }

// Insert persists one (garment, color, url) association. Variants are
// independent rows; there is no uniqueness constraint on (garment, color).
func (r *VariantRepo) Insert(v domain.ColorVariant) error {
	_, err := r.db.Exec(`
		INSERT INTO garment_colors(id, garment_id, color_id, image_url)
		VALUES (?, ?, ?, ?)
	`, v.ID, v.GarmentID, v.ColorID, v.ImageURL)
	return err
}

func (r *VariantRepo) ListByGarment(garmentID string) ([]domain.ColorVariant, error) {
	var out []domain.ColorVariant
	err := r.db.Select(&out, `
		SELECT id, garment_id, color_id, image_url
		FROM garment_colors
		WHERE garment_id = ?
		ORDER BY created_at, id
	`, garmentID)
	return out, err
}
