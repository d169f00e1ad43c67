package model

// Movie represents a film in the storefront catalog.  Movies are
// reference data: they are loaded once at startup and never change
// afterwards.  Many showtimes may screen the same movie.
//
// Fields:
//  ID          – unique, stable identifier.
//  Title       – display title of the movie.
//  Genre       – free-text category (e.g. "Sci-Fi", "Drama").
//  DurationMin – running time in minutes (positive).
//  ReleaseDate – original release date as "YYYY-MM-DD".
//  Language    – primary audio language.
//  PosterURL   – optional poster image reference.
type Movie struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	DurationMin uint32 `json:"duration_min"`
	ReleaseDate string `json:"release_date"`
	Language    string `json:"language"`
	PosterURL   string `json:"poster_url,omitempty"`
}
