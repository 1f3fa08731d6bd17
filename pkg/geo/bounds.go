package geo

import "math"

// boundsSlackDegrees absorve erro de ponto flutuante na borda do retângulo
const boundsSlackDegrees = 1e-9

// BoundingBox é um retângulo em graus que contém todo o círculo de raio informado
// ao redor de Center. Serve apenas como pré-filtro barato antes do haversine:
// todo ponto a até radiusMiles de Center está contido no retângulo.
type BoundingBox struct {
	Center      Point
	MaxDeltaLat float64
	MaxDeltaLon float64
	// sem restrição de longitude quando o círculo alcança um dos polos
	allLongitudes bool
}

// NewBoundingBox calcula o retângulo que envolve o círculo de raio radiusMiles.
func NewBoundingBox(center Point, radiusMiles float64) BoundingBox {
	angular := radiusMiles / EarthRadiusMiles
	centerLat := toRadians(center.Lat)

	box := BoundingBox{
		Center:      center,
		MaxDeltaLat: toDegrees(angular) + boundsSlackDegrees,
	}

	if angular >= math.Pi/2-math.Abs(centerLat) {
		box.allLongitudes = true
		return box
	}

	box.MaxDeltaLon = toDegrees(math.Asin(math.Sin(angular)/math.Cos(centerLat))) + boundsSlackDegrees

	return box
}

// Contains indica se p pode estar dentro do raio. Coordenadas NaN nunca estão contidas.
func (b BoundingBox) Contains(p Point) bool {
	if !(math.Abs(p.Lat-b.Center.Lat) <= b.MaxDeltaLat) {
		return false
	}

	if b.allLongitudes {
		return !math.IsNaN(p.Lon) && !math.IsNaN(b.Center.Lon)
	}

	return longitudeDelta(p.Lon, b.Center.Lon) <= b.MaxDeltaLon
}

// longitudeDelta retorna a menor diferença absoluta entre duas longitudes, considerando o antimeridiano
func longitudeDelta(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}
