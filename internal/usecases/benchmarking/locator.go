package benchmarking

import (
	"github.com/vfg2006/roi-benchmark-api/internal/domain"
	"github.com/vfg2006/roi-benchmark-api/pkg/geo"
)

// FindInRadius filtra os negócios do tipo informado (comparação exata) que estão a até
// radiusMiles do centro, com a borda inclusiva. Negócios sem coordenadas nunca entram.
// A ordem de entrada é mantida, mas quem chama não deve depender dela.
func FindInRadius(businesses []*domain.Business, businessType string, center geo.Point, radiusMiles float64) []*domain.Business {
	box := geo.NewBoundingBox(center, radiusMiles)

	found := make([]*domain.Business, 0)
	for _, business := range businesses {
		if business == nil || business.BusinessType != businessType {
			continue
		}

		location, ok := business.Location()
		if !ok {
			continue
		}

		if !box.Contains(location) {
			continue
		}

		if geo.Distance(location, center) <= radiusMiles {
			found = append(found, business)
		}
	}

	return found
}
