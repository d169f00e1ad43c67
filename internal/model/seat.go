package model

// Seat is one seat in the generated seat map of a showtime.  The
// Occupied flag is assigned at generation time and never changes
// afterwards; occupied seats can never enter a visitor's selection.
//
// Fields:
//  ID         – identifier unique within one generated seat map.
//  ShowtimeID – showtime this seat map belongs to.
//  Label      – row letter plus column number, e.g. "C7".
//  Occupied   – whether the seat is unavailable for selection.
type Seat struct {
	ID         uint64 `json:"id"`
	ShowtimeID uint64 `json:"showtime_id"`
	Label      string `json:"label"`
	Occupied   bool   `json:"occupied"`
}
