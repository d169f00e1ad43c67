package model

// Theater represents a cinema venue where showtimes take place.
// Like movies, theaters are immutable reference data.  TotalSeats is
// advisory only: it is not enforced against the generated seat maps.
//
// Fields:
//  ID         – unique identifier.
//  Name       – display name of the venue.
//  Location   – human-readable location label.
//  TotalSeats – advertised seat capacity (positive).
type Theater struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	TotalSeats uint32 `json:"total_seats"`
}
