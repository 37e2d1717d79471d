package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hemline/internal/domain"
	"hemline/internal/repos"
	"hemline/internal/storage"
)

// CatalogService covers the pass-through surface: garment CRUD, lookup
// lists, standalone image upload, customer registration.
type CatalogService struct {
	Garments  *repos.GarmentRepo
	Lookups   *repos.LookupRepo
	Customers *repos.CustomerRepo
	Store     storage.ObjectStore
}

func NewCatalogService(g *repos.GarmentRepo, l *repos.LookupRepo, c *repos.CustomerRepo, store storage.ObjectStore) *CatalogService {
	return &CatalogService{Garments: g, Lookups: l, Customers: c, Store: store}
}

type GarmentInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	StockTotal  int     `json:"stockTotal"`
	CategoryID  string  `json:"categoryId"`
	ImageURL    string  `json:"imageUrl"`
}

func (in GarmentInput) validate() error {
	if in.Name == "" || in.CategoryID == "" {
		return fmt.Errorf("%w: name and categoryId are required", domain.ErrInvalidInput)
	}
	if in.Price < 0 || in.StockTotal < 0 {
		return fmt.Errorf("%w: price and stockTotal must be non-negative", domain.ErrInvalidInput)
	}
	return nil
}

func (s *CatalogService) CreateGarment(in GarmentInput) (domain.Garment, error) {
	if err := in.validate(); err != nil {
		return domain.Garment{}, err
	}
	g := domain.Garment{
		ID:          uuid.NewString(),
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		StockTotal:  in.StockTotal,
		ImageURL:    in.ImageURL,
	}
	if err := s.Garments.Create(g); err != nil {
		return domain.Garment{}, err
	}
	return s.Garments.Get(g.ID)
}

func (s *CatalogService) UpdateGarment(id string, in GarmentInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	ok, err := s.Garments.Update(domain.Garment{
		ID:          id,
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		StockTotal:  in.StockTotal,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: garment %s", domain.ErrNotFound, id)
	}
	return nil
}

func (s *CatalogService) DeleteGarment(id string) error {
	ok, err := s.Garments.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: garment %s", domain.ErrNotFound, id)
	}
	return nil
}

func (s *CatalogService) GetGarment(id string) (domain.Garment, error) {
	g, err := s.Garments.Get(id)
	if err == sql.ErrNoRows {
		return domain.Garment{}, fmt.Errorf("%w: garment %s", domain.ErrNotFound, id)
	}
	return g, err
}

// UploadImage stores a standalone image and returns its public URL.
func (s *CatalogService) UploadImage(ctx context.Context, up Upload) (string, error) {
	if up.Filename == "" || len(up.Data) == 0 {
		return "", fmt.Errorf("%w: an image file is required", domain.ErrInvalidInput)
	}
	return s.Store.Upload(ctx, storage.ObjectPath("garments", up.Filename), up.Data, up.ContentType)
}

type CustomerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// RegisterCustomer stores a new customer with a bcrypt-hashed password.
func (s *CatalogService) RegisterCustomer(in CustomerInput) (domain.Customer, error) {
	if in.Name == "" || in.Email == "" || len(in.Password) < 8 {
		return domain.Customer{}, fmt.Errorf("%w: name, email and a password of at least 8 characters are required", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 12)
	if err != nil {
		return domain.Customer{}, err
	}
	c := domain.Customer{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Email: strings.ToLower(strings.TrimSpace(in.Email)),
		Phone: in.Phone,
	}
	if err := s.Customers.Create(c, string(hash)); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return domain.Customer{}, fmt.Errorf("%w: email already registered", domain.ErrInvalidInput)
		}
		return domain.Customer{}, err
	}
	return s.Customers.Get(c.ID)
}
