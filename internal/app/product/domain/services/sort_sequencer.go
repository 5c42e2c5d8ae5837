package services

import (
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
)

// SequenceImages validates a requested display order against the product's current images
// and returns the new sort_order of every image whose position actually changes.
// The order must be a permutation of the current image ids.
func SequenceImages(current []*domain.Image, ordered []string) (map[string]int, error) {
	if len(ordered) != len(current) {
		return nil, domain.ErrInvalidOrder
	}
	byID := make(map[string]*domain.Image, len(current))
	for _, img := range current {
		byID[img.ID()] = img
	}

	moves := make(map[string]int)
	seen := make(map[string]bool, len(ordered))
	for pos, id := range ordered {
		img, ok := byID[id]
		if !ok || seen[id] {
			return nil, domain.ErrInvalidOrder
		}
		seen[id] = true
		if img.SortOrder() != pos {
			moves[id] = pos
		}
	}
	return moves, nil
}
