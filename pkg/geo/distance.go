// Package geo contém cálculos de distância e área sobre coordenadas geográficas
package geo

import "math"

// EarthRadiusMiles é o raio médio da Terra usado em todos os cálculos de distância
const EarthRadiusMiles = 3959.0

// Point representa uma coordenada em graus decimais
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Distance retorna a distância de grande círculo entre a e b em milhas (fórmula de haversine).
// NaN em qualquer coordenada resulta em NaN.
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// arredondamento pode empurrar h levemente acima de 1 para pontos antipodais
	h = math.Min(h, 1)

	return EarthRadiusMiles * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
