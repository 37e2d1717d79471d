package repos

import (
	"github.com/jmoiron/sqlx"

	"hemline/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// LineInput is one line item ready for insertion; Subtotal is already
// computed server-side by the service.
type LineInput struct {
	GarmentID string
	Qty       int
	UnitPrice float64
	Subtotal  float64
}

// OrderFilter holds the optional list predicates. Zero values impose no
// constraint; set filters AND together.
type OrderFilter struct {
	CustomerID string
	StatusID   string
	MinTotal   *float64
	MaxTotal   *float64
	DateFrom   string // YYYY-MM-DD, inclusive
	DateTo     string // YYYY-MM-DD, inclusive
}

// Create inserts the order header and every line item inside a single
// transaction; any failure rolls the whole order back. Size allocations
// are deliberately not decremented here; a stock step would slot in
// between the item inserts and the commit.
func (r *OrderRepo) Create(o domain.Order, lines []LineInput) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO orders(id, customer_id, status_id, payment_method_id,
		                   address, coordinates, contact_number, total, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, o.ID, o.CustomerID, o.StatusID, o.PaymentID, o.Address, o.Coordinates, o.ContactNumber, o.Total); err != nil {
		return err
	}

	for _, ln := range lines {
		if _, err := tx.Exec(`
			INSERT INTO order_items(order_id, garment_id, qty, unit_price, subtotal)
			VALUES (?, ?, ?, ?, ?)
		`, o.ID, ln.GarmentID, ln.Qty, ln.UnitPrice, ln.Subtotal); err != nil {
			return err
		}
	}

	return tx.Commit()
}

const orderSelect = `
	SELECT o.id, o.customer_id, c.name AS customer_name,
	       o.status_id, st.name AS status_name,
	       o.payment_method_id, pm.name AS payment_name,
	       o.address, COALESCE(o.coordinates,'') AS coordinates,
	       COALESCE(o.contact_number,'') AS contact_number,
	       o.total, o.created_at
	FROM orders o
	JOIN customers c        ON c.id  = o.customer_id
	JOIN statuses st        ON st.id = o.status_id
	JOIN payment_methods pm ON pm.id = o.payment_method_id`

// List returns orders matching the filter, newest first, each with its
// line items nested in insertion order. Orders without items appear with
// an empty item list.
func (r *OrderRepo) List(f OrderFilter) ([]domain.Order, error) {
	b := &whereBuilder{}
	if f.CustomerID != "" {
		b.Eq("o.customer_id", f.CustomerID)
	}
	if f.StatusID != "" {
		b.Eq("o.status_id", f.StatusID)
	}
	if f.MinTotal != nil {
		b.Gte("o.total", *f.MinTotal)
	}
	if f.MaxTotal != nil {
		b.Lte("o.total", *f.MaxTotal)
	}
	if f.DateFrom != "" {
		b.Gte("date(o.created_at)", f.DateFrom)
	}
	if f.DateTo != "" {
		b.Lte("date(o.created_at)", f.DateTo)
	}
	where, args := b.Render()

	var orders []domain.Order
	err := r.db.Select(&orders, orderSelect+where+`
	ORDER BY datetime(o.created_at) DESC, o.id DESC`, args...)
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Get returns one order in the same nested shape as List. Missing orders
// surface as sql.ErrNoRows.
func (r *OrderRepo) Get(orderID string) (domain.Order, error) {
	var o domain.Order
	if err := r.db.Get(&o, orderSelect+` WHERE o.id = ?`, orderID); err != nil {
		return domain.Order{}, err
	}
	one := []domain.Order{o}
	if err := r.attachItems(one); err != nil {
		return domain.Order{}, err
	}
	return one[0], nil
}

// UpdateStatus applies a status change and reports whether an order row
// matched. Status validity is checked by the caller.
func (r *OrderRepo) UpdateStatus(orderID, statusID string) (bool, error) {
	res, err := r.db.Exec(`UPDATE orders SET status_id = ? WHERE id = ?`, statusID, orderID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// attachItems loads all line items for the given orders in one query and
// groups them per order, ascending by item id (insertion order).
func (r *OrderRepo) attachItems(orders []domain.Order) error {
	for i := range orders {
		orders[i].Items = []domain.OrderItem{}
	}
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, 0, len(orders))
	index := make(map[string]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID)
		index[o.ID] = i
	}

	query, args, err := sqlx.In(`
		SELECT oi.id, oi.order_id, oi.garment_id,
		       g.name AS garment_name, COALESCE(g.image_url,'') AS image_url,
		       oi.qty, oi.unit_price, oi.subtotal
		FROM order_items oi
		JOIN garments g ON g.id = oi.garment_id
		WHERE oi.order_id IN (?)
		ORDER BY oi.id
	`, ids)
	if err != nil {
		return err
	}

	var items []domain.OrderItem
	if err := r.db.Select(&items, r.db.Rebind(query), args...); err != nil {
		return err
	}
	for _, it := range items {
		i := index[it.OrderID]
		orders[i].Items = append(orders[i].Items, it)
	}
	return nil
}
