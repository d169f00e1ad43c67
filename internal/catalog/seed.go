package catalog

import "github.com/filmgate/storefront/internal/model"

// Seed returns a store loaded with the storefront's fixed reference
// data.  In a full deployment this data would come from a remote
// catalog service; here it stands in for that service so the rest of
// the system can be exercised end to end.
func Seed() *Store {
	movies := []model.Movie{
		{ID: 1, Title: "Inception", Genre: "Sci-Fi", DurationMin: 148, ReleaseDate: "2010-07-16", Language: "English", PosterURL: "https://m.media-amazon.com/images/M/MV5BMjAxMzY3NjcxNF5BMl5BanBnXkFtZTcwNTI5OTM0Mw@@._V1_.jpg"},
		{ID: 2, Title: "The Dark Knight", Genre: "Action", DurationMin: 152, ReleaseDate: "2008-07-18", Language: "English", PosterURL: "https://m.media-amazon.com/images/M/MV5BMTMxNTMwODM0NF5BMl5BanBnXkFtZTcwODAyMTk2Mw@@._V1_.jpg"},
		{ID: 3, Title: "Avatar: The Way of Water", Genre: "Sci-Fi", DurationMin: 192, ReleaseDate: "2022-12-16", Language: "English", PosterURL: "https://m.media-amazon.com/images/M/MV5BYjhiNjBlODctY2ZiOC00YjVlLWFlNzAtNTVhNzM1YjI1NzMxXkEyXkFqcGdeQXVyMjQxNTE1MDA@._V1_FMjpg_UX1000_.jpg"},
		{ID: 4, Title: "The Matrix Resurrections", Genre: "Sci-Fi", DurationMin: 148, ReleaseDate: "2021-12-22", Language: "English", PosterURL: "https://m.media-amazon.com/images/M/MV5BMGJkNDJlZWUtOGM1Ny00YjNkLThiM2QtY2ZjMzQxMTIxNWNmXkEyXkFqcGdeQXVyMDM2NDM2MQ@@._V1_.jpg"},
		{ID: 5, Title: "Top Gun: Maverick", Genre: "Action", DurationMin: 130, ReleaseDate: "2022-05-27", Language: "English", PosterURL: "https://m.media-amazon.com/images/M/MV5BZWYzOGEwNTgtNWU3NS00ZTQ0LWJkODUtMmVhMjIwMjA1ZmQwXkEyXkFqcGdeQXVyMjkwOTAyMDU@._V1_.jpg"},
		{ID: 6, Title: "Joker", Genre: "Drama", DurationMin: 122, ReleaseDate: "2019-10-04", Language: "English", PosterURL: "https://m.media-amazon.com/images/M/MV5BNGVjNWI4ZGUtNzE0MS00YTJmLWE0ZDctN2ZiYTk2YmI3NTYyXkEyXkFqcGdeQXVyMTkxNjUyNQ@@._V1_.jpg"},
		{ID: 7, Title: "Parasite", Genre: "Thriller", DurationMin: 132, ReleaseDate: "2019-05-30", Language: "Korean", PosterURL: "https://m.media-amazon.com/images/M/MV5BYWZjMjk3ZTItODQ2ZC00NTY5LWE0ZDYtZTI3MjcwN2Q5NTVkXkEyXkFqcGdeQXVyODk4OTc3MTY@._V1_.jpg"},
		{ID: 8, Title: "Interstellar", Genre: "Sci-Fi", DurationMin: 169, ReleaseDate: "2014-11-07", Language: "English", PosterURL: "https://m.media-amazon.com/images/M/MV5BZjdkOTU3MDktN2IxOS00OGEyLWFmMjktY2FiMmZkNWIyODZiXkEyXkFqcGdeQXVyMTMxODk2OTU@._V1_.jpg"},
		{ID: 9, Title: "Avengers: Endgame", Genre: "Action", DurationMin: 181, ReleaseDate: "2019-04-26", Language: "English", PosterURL: "https://m.media-amazon.com/images/M/MV5BMTc5MDE2ODcwNV5BMl5BanBnXkFtZTgwMzI2NzQ2NzM@._V1_.jpg"},
		{ID: 10, Title: "Titanic", Genre: "Romance", DurationMin: 195, ReleaseDate: "1997-12-19", Language: "English", PosterURL: "https://m.media-amazon.com/images/M/MV5BMDdmZGU3NDQtY2E5My00ZTliLWIzOTUtMTY4ZGI1YjdiNjk3XkEyXkFqcGdeQXVyNTA4NzY1MzY@._V1_.jpg"},
	}

	theaters := []model.Theater{
		{ID: 1, Name: "Cineplex 1", Location: "Downtown", TotalSeats: 100},
		{ID: 2, Name: "Grand Cinema", Location: "Uptown", TotalSeats: 200},
		{ID: 3, Name: "Regal Cinemas", Location: "City Center", TotalSeats: 150},
		{ID: 4, Name: "PVR Cinemas", Location: "Mall Road", TotalSeats: 200},
		{ID: 5, Name: "INOX Movies", Location: "Downtown", TotalSeats: 180},
	}

	showtimes := []model.Showtime{
		{ID: 1, MovieID: 1, TheaterID: 1, ShowDate: "2025-01-26", ShowTime: "18:00:00"},
		{ID: 2, MovieID: 2, TheaterID: 2, ShowDate: "2025-01-26", ShowTime: "20:00:00"},
		{ID: 3, MovieID: 3, TheaterID: 3, ShowDate: "2025-01-26", ShowTime: "22:00:00"},
		{ID: 4, MovieID: 4, TheaterID: 4, ShowDate: "2025-01-27", ShowTime: "14:00:00"},
		{ID: 5, MovieID: 5, TheaterID: 5, ShowDate: "2025-01-27", ShowTime: "16:00:00"},
		{ID: 6, MovieID: 6, TheaterID: 1, ShowDate: "2025-01-27", ShowTime: "19:00:00"},
		{ID: 7, MovieID: 7, TheaterID: 2, ShowDate: "2025-01-28", ShowTime: "20:00:00"},
		{ID: 8, MovieID: 8, TheaterID: 3, ShowDate: "2025-01-28", ShowTime: "21:00:00"},
		{ID: 9, MovieID: 9, TheaterID: 4, ShowDate: "2025-01-29", ShowTime: "17:00:00"},
		{ID: 10, MovieID: 10, TheaterID: 5, ShowDate: "2025-01-29", ShowTime: "18:00:00"},
	}

	return NewStore(movies, theaters, showtimes)
}
