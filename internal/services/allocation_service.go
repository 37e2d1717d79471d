package services

import (
	"database/sql"
	"fmt"

	"hemline/internal/domain"
	"hemline/internal/repos"
)

// SizeStock is one submitted (size, quantity) pair.
type SizeStock struct {
	SizeID string `json:"sizeId"`
	Stock  int    `json:"stock"`
}

type AllocationService struct {
	Alloc *repos.AllocationRepo
}

func NewAllocationService(alloc *repos.AllocationRepo) *AllocationService {
	return &AllocationService{Alloc: alloc}
}

// RegisterSizes upserts the submitted allocations. Re-submitting a
// (garment, size) pair replaces its quantity. The declared stock_total
// ceiling is NOT checked here; allocations past the ceiling are accepted
// and only flagged by StockDetail.
func (s *AllocationService) RegisterSizes(garmentID string, sizes []SizeStock) error {
	if garmentID == "" {
		return fmt.Errorf("%w: garmentId is required", domain.ErrInvalidInput)
	}
	if len(sizes) == 0 {
		return fmt.Errorf("%w: sizes list must not be empty", domain.ErrInvalidInput)
	}
	for _, sz := range sizes {
		if sz.SizeID == "" || sz.Stock < 0 {
			return fmt.Errorf("%w: each size needs a sizeId and a non-negative stock", domain.ErrInvalidInput)
		}
	}

	for _, sz := range sizes {
		if err := s.Alloc.UpsertQty(garmentID, sz.SizeID, sz.Stock); err != nil {
			return err
		}
	}
	return nil
}

// StockDetail recomputes the garment's allocation summary: declared total,
// assigned sum, remaining, and the per-size breakdown. Callers distinguish
// three outcomes: room left, fully allocated (FullyAllocated set), and
// garment missing (ErrNotFound).
func (s *AllocationService) StockDetail(garmentID string) (domain.StockDetail, error) {
	total, err := s.Alloc.StockTotal(garmentID)
	if err == sql.ErrNoRows {
		return domain.StockDetail{}, fmt.Errorf("%w: garment %s", domain.ErrNotFound, garmentID)
	}
	if err != nil {
		return domain.StockDetail{}, err
	}

	assigned, err := s.Alloc.Assigned(garmentID)
	if err != nil {
		return domain.StockDetail{}, err
	}
	sizes, err := s.Alloc.AssignedSizes(garmentID)
	if err != nil {
		return domain.StockDetail{}, err
	}
	if sizes == nil {
		sizes = []domain.AllocatedSize{}
	}

	available := total - assigned
	return domain.StockDetail{
		GarmentID:      garmentID,
		StockTotal:     total,
		StockAssigned:  assigned,
		StockAvailable: available,
		FullyAllocated: available <= 0,
		AssignedSizes:  sizes,
	}, nil
}
