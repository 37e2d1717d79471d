package repos

import (
	"github.com/jmoiron/sqlx"

	"hemline/internal/domain"
)

type CustomerRepo struct{ db *sqlx.DB }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// Create inserts a customer. A duplicate email violates the unique index
// and surfaces as the driver's constraint error.
func (r *CustomerRepo) Create(c domain.Customer, passwordHash string) error {
	_, err := r.db.Exec(`
		INSERT INTO customers(id, name, email, password_hash, phone)
		VALUES (?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.Email, passwordHash, c.Phone)
	return err
}

func (r *CustomerRepo) Get(id string) (domain.Customer, error) {
	var c domain.Customer
	err := r.db.Get(&c, `
		SELECT id, name, email, COALESCE(phone,'') AS phone, created_at
		FROM customers WHERE id = ?
	`, id)
	return c, err
}

func (r *CustomerRepo) Exists(id string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM customers WHERE id = ?`, id); err != nil {
		return false, err
	}
	return n > 0, nil
}
