package handlers

import (
	"github.com/jmoiron/sqlx"

	"hemline/internal/repos"
	"hemline/internal/services"
	"hemline/internal/storage"
)

type Deps struct {
	CatalogHandler    *CatalogHandler
	AllocationHandler *AllocationHandler
	VariantHandler    *VariantHandler
	OrderHandler      *OrderHandler
}

func NewDeps(db *sqlx.DB, store storage.ObjectStore) *Deps {
	garmentRepo := repos.NewGarmentRepo(db)
	allocRepo := repos.NewAllocationRepo(db)
	variantRepo := repos.NewVariantRepo(db)
	lookupRepo := repos.NewLookupRepo(db)
	customerRepo := repos.NewCustomerRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(garmentRepo, lookupRepo, customerRepo, store)
	allocSvc := services.NewAllocationService(allocRepo)
	variantSvc := services.NewVariantService(variantRepo, store)
	orderSvc := services.NewOrderService(orderRepo, lookupRepo)

	return &Deps{
		CatalogHandler:    &CatalogHandler{Catalog: catalogSvc},
		AllocationHandler: &AllocationHandler{Alloc: allocSvc},
		VariantHandler:    &VariantHandler{Variants: variantSvc},
		OrderHandler:      &OrderHandler{Orders: orderSvc},
	}
}
