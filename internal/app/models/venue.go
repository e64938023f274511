package models

// Venue represents an examination or lecture venue. Latitude, longitude and
// radius are optional geofencing fields; not every venue has them captured.
type Venue struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name" binding:"required"`
	Code      string   `json:"code" binding:"required"`
	Capacity  int      `json:"capacity" binding:"required"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Radius    *float64 `json:"radius,omitempty"`
	VenueType string   `json:"venue_type,omitempty"`
}
