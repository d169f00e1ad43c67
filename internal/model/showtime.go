package model

// Showtime is a scheduled screening of one movie at one theater on a
// given date and time.  A showtime references exactly one movie and
// one theater; many showtimes may reference the same movie or theater.
//
// Fields:
//  ID        – unique identifier.
//  MovieID   – id of the movie being screened.
//  TheaterID – id of the hosting theater.
//  ShowDate  – calendar date as "YYYY-MM-DD".
//  ShowTime  – time of day as "HH:MM:SS".
type Showtime struct {
	ID        uint64 `json:"id"`
	MovieID   uint64 `json:"movie_id"`
	TheaterID uint64 `json:"theater_id"`
	ShowDate  string `json:"show_date"`
	ShowTime  string `json:"show_time"`
}

// EnrichedShowtime is a showtime with its movie and theater references
// resolved.  Movie or Theater is nil when the referenced id is unknown
// to the catalog; a dangling reference never fails the lookup.
type EnrichedShowtime struct {
	Showtime
	Movie   *Movie   `json:"movie,omitempty"`
	Theater *Theater `json:"theater,omitempty"`
}
