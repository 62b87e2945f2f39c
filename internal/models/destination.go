package models

// Destination is a catalog entry users can plan a trip to.
// Destinations are created lazily the first time someone picks a place at
// coordinates the catalog does not know yet.
type Destination struct {
	ID           int64
	Name         string
	Location     string
	Latitude     float64
	Longitude    float64
	Rating       float64
	Images       []string
	PrimaryImage string
}

// Coordinates is an exact latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}
