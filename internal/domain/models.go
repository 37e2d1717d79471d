package domain

type Category struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}

type Size struct {
	ID           string `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Description  string `db:"description" json:"description"`
	DisplayOrder int    `db:"display_order" json:"displayOrder"`
}

type Color struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Status struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type PaymentMethod struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Garment struct {
	ID          string  `db:"id" json:"id"`
	CategoryID  string  `db:"category_id" json:"categoryId"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	StockTotal  int     `db:"stock_total" json:"stockTotal"`
	ImageURL    string  `db:"image_url" json:"imageUrl"`
	CreatedAt   string  `db:"created_at" json:"createdAt"`
	UpdatedAt   string  `db:"updated_at" json:"updatedAt,omitempty"`
}

// SizeAllocation is one (garment, size) stock commitment.
type SizeAllocation struct {
	GarmentID string `db:"garment_id" json:"garmentId"`
	SizeID    string `db:"size_id" json:"sizeId"`
	Qty       int    `db:"qty" json:"stock"`
}

// AllocatedSize joins an allocation with its size's display fields.
type AllocatedSize struct {
	SizeID      string `db:"size_id" json:"sizeId"`
	SizeName    string `db:"size_name" json:"sizeName"`
	Description string `db:"description" json:"description"`
	Qty         int    `db:"qty" json:"stock"`
}

// StockDetail is the read-side view of a garment's allocation ledger.
// StockAvailable is recomputed on every read, never cached.
type StockDetail struct {
	GarmentID      string          `json:"garmentId"`
	StockTotal     int             `json:"stockTotal"`
	StockAssigned  int             `json:"stockAssigned"`
	StockAvailable int             `json:"stockAvailable"`
	FullyAllocated bool            `json:"-"`
	AssignedSizes  []AllocatedSize `json:"assignedSizes"`
}

type ColorVariant struct {
	ID        string `db:"id" json:"id"`
	GarmentID string `db:"garment_id" json:"garmentId"`
	ColorID   string `db:"color_id" json:"colorId"`
	ImageURL  string `db:"image_url" json:"imageUrl"`
}

// VariantRecord is one successfully registered (color, url) pair.
type VariantRecord struct {
	ColorID  string `json:"colorId"`
	ImageURL string `json:"imageUrl"`
}

type Customer struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}

type OrderItem struct {
	ID          int64   `db:"id" json:"itemId"`
	OrderID     string  `db:"order_id" json:"-"`
	GarmentID   string  `db:"garment_id" json:"garmentId"`
	GarmentName string  `db:"garment_name" json:"garmentName"`
	ImageURL    string  `db:"image_url" json:"garmentImage"`
	Qty         int     `db:"qty" json:"quantity"`
	UnitPrice   float64 `db:"unit_price" json:"unitPrice"`
	Subtotal    float64 `db:"subtotal" json:"subtotal"`
}

// Order is the nested shape served by the order queries: header fields
// joined with display names, items in insertion order.
type Order struct {
	ID            string      `db:"id" json:"id"`
	CustomerID    string      `db:"customer_id" json:"customerId"`
	CustomerName  string      `db:"customer_name" json:"customerName"`
	StatusID      string      `db:"status_id" json:"statusId"`
	StatusName    string      `db:"status_name" json:"statusName"`
	PaymentID     string      `db:"payment_method_id" json:"paymentMethodId"`
	PaymentName   string      `db:"payment_name" json:"paymentMethodName"`
	Address       string      `db:"address" json:"address"`
	Coordinates   string      `db:"coordinates" json:"coordinates"`
	ContactNumber string      `db:"contact_number" json:"contactNumber"`
	Total         float64     `db:"total" json:"total"`
	CreatedAt     string      `db:"created_at" json:"createdAt"`
	Items         []OrderItem `json:"items"`
}
