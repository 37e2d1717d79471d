package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Lookup tables must exist before anything references them
	// (idempotent; safe to run every start).
	if err := seedLookups(db); err != nil {
		return nil, err
	}
	// Demo catalog if DB is empty.
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_nocase ON categories(LOWER(name));

-- Sizes (closed lookup)
CREATE TABLE IF NOT EXISTS sizes(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  display_order INTEGER NOT NULL DEFAULT 0
);

-- Colors (closed lookup)
CREATE TABLE IF NOT EXISTS colors(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL
);

-- Order statuses (closed lookup; never written by the API)
CREATE TABLE IF NOT EXISTS statuses(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS payment_methods(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL
);

-- Customers
CREATE TABLE IF NOT EXISTS customers(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  phone TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_email ON customers(LOWER(email));

-- Garments
CREATE TABLE IF NOT EXISTS garments(
  id TEXT PRIMARY KEY,
  category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL CHECK (price >= 0),
  stock_total INTEGER NOT NULL DEFAULT 0 CHECK (stock_total >= 0),
  image_url TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_garments_category ON garments(category_id);
CREATE INDEX IF NOT EXISTS idx_garments_price    ON garments(price);

-- Per-size stock allocation; one row per (garment, size)
CREATE TABLE IF NOT EXISTS garment_sizes(
  garment_id TEXT NOT NULL REFERENCES garments(id) ON DELETE CASCADE,
  size_id    TEXT NOT NULL REFERENCES sizes(id) ON DELETE RESTRICT,
  qty INTEGER NOT NULL DEFAULT 0 CHECK (qty >= 0),
  updated_at TEXT,
  PRIMARY KEY(garment_id, size_id)
);
CREATE INDEX IF NOT EXISTS idx_garment_sizes_garment ON garment_sizes(garment_id);

-- Color variants with their uploaded image
CREATE TABLE IF NOT EXISTS garment_colors(
  id TEXT PRIMARY KEY,
  garment_id TEXT NOT NULL REFERENCES garments(id) ON DELETE CASCADE,
  color_id   TEXT NOT NULL REFERENCES colors(id) ON DELETE RESTRICT,
  image_url  TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_garment_colors_garment ON garment_colors(garment_id);

-- Orders
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  customer_id TEXT NOT NULL REFERENCES customers(id),
  status_id TEXT NOT NULL DEFAULT 'NEW' REFERENCES statuses(id),
  payment_method_id TEXT NOT NULL REFERENCES payment_methods(id),
  address TEXT NOT NULL,
  coordinates TEXT,
  contact_number TEXT,
  total NUMERIC NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_customer   ON orders(customer_id);
CREATE INDEX IF NOT EXISTS idx_orders_status     ON orders(status_id);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

-- Line items; integer id carries insertion order within an order
CREATE TABLE IF NOT EXISTS order_items(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id   TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  garment_id TEXT NOT NULL REFERENCES garments(id),
  qty INTEGER NOT NULL CHECK (qty >= 1),
  unit_price NUMERIC NOT NULL CHECK (unit_price >= 0),
  subtotal NUMERIC NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);
`
	_, err := db.Exec(schema)
	return err
}

// seedLookups keeps the closed lookup sets present (idempotent).
func seedLookups(db *sqlx.DB) error {
	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	rows := []struct{ table, id, name string }{
		{"statuses", "NEW", "New"},
		{"statuses", "CONFIRMED", "Confirmed"},
		{"statuses", "SHIPPED", "Shipped"},
		{"statuses", "DELIVERED", "Delivered"},
		{"statuses", "CANCELLED", "Cancelled"},
		{"payment_methods", "cash", "Cash on delivery"},
		{"payment_methods", "card", "Credit / debit card"},
		{"payment_methods", "transfer", "Bank transfer"},
		{"colors", "black", "Black"},
		{"colors", "white", "White"},
		{"colors", "red", "Red"},
		{"colors", "blue", "Blue"},
		{"colors", "green", "Green"},
	}
	for _, r := range rows {
		if _, err := tx.Exec(
			`INSERT INTO `+r.table+`(id,name) VALUES(?,?) ON CONFLICT(id) DO NOTHING`,
			r.id, r.name,
		); err != nil {
			return err
		}
	}

	sizes := []struct {
		id, name, desc string
		ord            int
	}{
		{"S", "Small", "Chest 86-91 cm", 1},
		{"M", "Medium", "Chest 96-101 cm", 2},
		{"L", "Large", "Chest 106-111 cm", 3},
		{"XL", "Extra large", "Chest 116-121 cm", 4},
	}
	for _, s := range sizes {
		if _, err := tx.Exec(
			`INSERT INTO sizes(id,name,description,display_order) VALUES(?,?,?,?) ON CONFLICT(id) DO NOTHING`,
			s.id, s.name, s.desc, s.ord,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo categories/garments/customers")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categories(id,name) VALUES
	  ('shirts','Shirts'),
	  ('trousers','Trousers'),
	  ('dresses','Dresses'),
	  ('jackets','Jackets')`)

	tx.MustExec(`INSERT INTO garments(id,category_id,name,description,price,stock_total,image_url) VALUES
	  ('shirt-linen-01','shirts','Linen shirt','Relaxed fit linen shirt',39.90,20,''),
	  ('trouser-chino-01','trousers','Chino trousers','Slim chino, stretch cotton',49.50,12,''),
	  ('dress-midi-01','dresses','Midi wrap dress','Floral print wrap dress',64.00,8,'')`)

	tx.MustExec(`INSERT INTO garment_sizes(garment_id,size_id,qty) VALUES
	  ('shirt-linen-01','S',5),
	  ('shirt-linen-01','M',8),
	  ('trouser-chino-01','M',6)`)

	h, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), 12)
	tx.MustExec(`INSERT INTO customers(id,name,email,password_hash,phone) VALUES
	  ('c-demo','Demo Customer','demo@hemline.test',?,'+1 555 0100')`, string(h))

	return tx.Commit()
}
