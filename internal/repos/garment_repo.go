package repos

import (
	"github.com/jmoiron/sqlx"

	"hemline/internal/domain"
)

type GarmentRepo struct{ db *sqlx.DB }

func NewGarmentRepo(db *sqlx.DB) *GarmentRepo { return &GarmentRepo{db: db} }

const garmentCols = `id, category_id, name, COALESCE(description,'') AS description,
	price, stock_total, COALESCE(image_url,'') AS image_url,
	created_at, COALESCE(updated_at,'') AS updated_at`

func (r *GarmentRepo) Create(g domain.Garment) error {
	_, err := r.db.Exec(`
		INSERT INTO garments(id, category_id, name, description, price, stock_total, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, g.ID, g.CategoryID, g.Name, g.Description, g.Price, g.StockTotal, g.ImageURL)
	return err
}

func (r *GarmentRepo) Get(id string) (domain.Garment, error) {
	var g domain.Garment
	err := r.db.Get(&g, `SELECT `+garmentCols+` FROM garments WHERE id = ?`, id)
	return g, err
}

func (r *GarmentRepo) List() ([]domain.Garment, error) {
	var out []domain.Garment
	err := r.db.Select(&out, `SELECT `+garmentCols+` FROM garments ORDER BY created_at DESC, id`)
	return out, err
}

func (r *GarmentRepo) Update(g domain.Garment) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE garments
		SET name = ?, description = ?, price = ?, stock_total = ?, category_id = ?, image_url = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, g.Name, g.Description, g.Price, g.StockTotal, g.CategoryID, g.ImageURL, g.ID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *GarmentRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM garments WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// ListBySize returns garments that have an allocation row for the size.
func (r *GarmentRepo) ListBySize(sizeID string) ([]domain.Garment, error) {
	var out []domain.Garment
	err := r.db.Select(&out, `
		SELECT g.id, g.category_id, g.name, COALESCE(g.description,'') AS description,
		       g.price, g.stock_total, COALESCE(g.image_url,'') AS image_url,
		       g.created_at, COALESCE(g.updated_at,'') AS updated_at
		FROM garments g
		JOIN garment_sizes gs ON gs.garment_id = g.id
		WHERE gs.size_id = ?
		ORDER BY g.name
	`, sizeID)
	return out, err
}

// ListByMaxPrice returns garments priced at or below the amount.
func (r *GarmentRepo) ListByMaxPrice(max float64) ([]domain.Garment, error) {
	var out []domain.Garment
	err := r.db.Select(&out, `SELECT `+garmentCols+` FROM garments WHERE price <= ? ORDER BY price`, max)
	return out, err
}

func (r *GarmentRepo) ListByCategory(categoryID string) ([]domain.Garment, error) {
	var out []domain.Garment
	err := r.db.Select(&out, `SELECT `+garmentCols+` FROM garments WHERE category_id = ? ORDER BY name`, categoryID)
	return out, err
}

// Exists is a cheap existence probe used before ledger reads.
func (r *GarmentRepo) Exists(id string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM garments WHERE id = ?`, id); err != nil {
		return false, err
	}
	return n > 0, nil
}
