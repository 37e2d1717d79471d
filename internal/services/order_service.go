package services

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/google/uuid"

	"hemline/internal/domain"
	"hemline/internal/repos"
)

// Every order starts in the initial status; transitions go through SetStatus.
const statusNew = "NEW"

type LineItem struct {
	GarmentID string  `json:"garmentId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type CreateOrderInput struct {
	CustomerID      string
	PaymentMethodID string
	Address         string
	Coordinates     string
	ContactNumber   string
	Total           float64
	Items           []LineItem
}

type OrderService struct {
	Orders  *repos.OrderRepo
	Lookups *repos.LookupRepo
}

func NewOrderService(orders *repos.OrderRepo, lookups *repos.LookupRepo) *OrderService {
	return &OrderService{Orders: orders, Lookups: lookups}
}

// Create persists the order header plus all line items atomically.
// Subtotals are computed server-side from quantity and unit price; only
// the unit price is taken from the caller. Any store failure rolls the
// whole order back and surfaces as ErrTransactionFailed with the cause.
func (s *OrderService) Create(in CreateOrderInput) (string, error) {
	if in.CustomerID == "" || in.PaymentMethodID == "" || in.Address == "" {
		return "", fmt.Errorf("%w: customerId, paymentMethodId and address are required", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return "", fmt.Errorf("%w: lineItems must not be empty", domain.ErrInvalidInput)
	}
	for _, it := range in.Items {
		if it.GarmentID == "" || it.Quantity < 1 || it.UnitPrice < 0 {
			return "", fmt.Errorf("%w: each line item needs a garmentId, quantity >= 1 and unitPrice >= 0", domain.ErrInvalidInput)
		}
	}

	o := domain.Order{
		ID:            uuid.NewString(),
		CustomerID:    in.CustomerID,
		StatusID:      statusNew,
		PaymentID:     in.PaymentMethodID,
		Address:       in.Address,
		Coordinates:   in.Coordinates,
		ContactNumber: in.ContactNumber,
		Total:         roundCents(in.Total),
	}
	lines := make([]repos.LineInput, 0, len(in.Items))
	for _, it := range in.Items {
		lines = append(lines, repos.LineInput{
			GarmentID: it.GarmentID,
			Qty:       it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  roundCents(float64(it.Quantity) * it.UnitPrice),
		})
	}

	if err := s.Orders.Create(o, lines); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTransactionFailed, err)
	}
	return o.ID, nil
}

func (s *OrderService) List(f repos.OrderFilter) ([]domain.Order, error) {
	return s.Orders.List(f)
}

func (s *OrderService) Get(orderID string) (domain.Order, error) {
	o, err := s.Orders.Get(orderID)
	if err == sql.ErrNoRows {
		return domain.Order{}, fmt.Errorf("%w: order %s", domain.ErrNotFound, orderID)
	}
	return o, err
}

// SetStatus applies a status change after checking the target against the
// closed status set. The status check runs first, independent of whether
// the order exists; there is no transition graph, any known status may
// follow any other.
func (s *OrderService) SetStatus(orderID, statusID string) error {
	if statusID == "" {
		return fmt.Errorf("%w: statusId is required", domain.ErrInvalidInput)
	}
	known, err := s.Lookups.StatusExists(statusID)
	if err != nil {
		return err
	}
	if !known {
		return fmt.Errorf("%w: unknown status %q", domain.ErrNotFound, statusID)
	}

	matched, err := s.Orders.UpdateStatus(orderID, statusID)
	if err != nil {
		return err
	}
	if !matched {
		return fmt.Errorf("%w: order %s", domain.ErrNotFound, orderID)
	}
	return nil
}

// roundCents snaps a money amount to minor-unit precision.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
