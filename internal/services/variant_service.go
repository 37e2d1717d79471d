package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"hemline/internal/domain"
	"hemline/internal/repos"
	"hemline/internal/storage"
)

// Upload is one image blob received from a multipart request.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type VariantService struct {
	Variants *repos.VariantRepo
	Store    storage.ObjectStore
}

func NewVariantService(variants *repos.VariantRepo, store storage.ObjectStore) *VariantService {
	return &VariantService{Variants: variants, Store: store}
}

// RegisterColors attaches color variants to a garment: position i in
// colorIDs pairs with position i in uploads. Each image goes to the object
// store first; the resulting URL is persisted with the color. A failed
// pair is skipped and the rest continue; variants are independent of each
// other, so the whole batch is never rolled back. The returned records
// enumerate exactly the pairs that succeeded.
func (s *VariantService) RegisterColors(ctx context.Context, garmentID string, colorIDs []string, uploads []Upload) ([]domain.VariantRecord, error) {
	if garmentID == "" {
		return nil, fmt.Errorf("%w: garmentId is required", domain.ErrInvalidInput)
	}
	if len(colorIDs) == 0 || len(uploads) == 0 {
		return nil, fmt.Errorf("%w: colors and images must not be empty", domain.ErrInvalidInput)
	}
	if len(colorIDs) != len(uploads) {
		return nil, fmt.Errorf("%w: got %d colors but %d images", domain.ErrInvalidInput, len(colorIDs), len(uploads))
	}

	records := []domain.VariantRecord{}
	for i, colorID := range colorIDs {
		up := uploads[i]
		url, err := s.Store.Upload(ctx, storage.ObjectPath("garments", up.Filename), up.Data, up.ContentType)
		if err != nil {
			log.Printf("[variants] upload skipped garment=%s color=%s: %v", garmentID, colorID, err)
			continue
		}
		v := domain.ColorVariant{
			ID:        uuid.NewString(),
			GarmentID: garmentID,
			ColorID:   colorID,
			ImageURL:  url,
		}
		if err := s.Variants.Insert(v); err != nil {
			log.Printf("[variants] persist skipped garment=%s color=%s: %v", garmentID, colorID, err)
			continue
		}
		records = append(records, domain.VariantRecord{ColorID: colorID, ImageURL: url})
	}
	return records, nil
}
