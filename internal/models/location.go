package models

// Coordinates is a geographic point in degrees.
type Coordinates struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// CoordinatesFromPair reads a [longitude, latitude] pair. It returns nil for any other length.
func CoordinatesFromPair(pair []float64) *Coordinates {
	if len(pair) != 2 {
		return nil
	}
	return &Coordinates{Longitude: pair[0], Latitude: pair[1]}
}

// Pair returns the point as [longitude, latitude], the GeoJSON order.
func (c Coordinates) Pair() []float64 {
	return []float64{c.Longitude, c.Latitude}
}

// NamedLocation is a reference place clients offer when picking a location.
type NamedLocation struct {
	Location    string    `json:"location"`
	Coordinates []float64 `json:"coordinates"`
}
