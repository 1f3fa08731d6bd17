package domain

import (
	"time"

	"github.com/vfg2006/roi-benchmark-api/pkg/geo"
)

type Business struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BusinessType string    `json:"business_type"`
	Address      string    `json:"address"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	CreatedAt    time.Time `json:"created_at"`
}

// Location retorna as coordenadas do negócio. ok é falso quando alguma coordenada está ausente.
func (b *Business) Location() (point geo.Point, ok bool) {
	if b.Latitude == nil || b.Longitude == nil {
		return geo.Point{}, false
	}

	return geo.Point{Lat: *b.Latitude, Lon: *b.Longitude}, true
}

type AdMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
