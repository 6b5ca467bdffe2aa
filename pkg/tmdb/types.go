package tmdb

// Movie list entry as returned by /movie/popular and /search/movie
type Movie struct {
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	GenreIDs         []int   `json:"genre_ids"`
	ID               int64   `json:"id"`
	VoteAverage      float64 `json:"vote_average"`
	Popularity       float64 `json:"popularity"`
	VoteCount        int     `json:"vote_count"`
	Adult            bool    `json:"adult"`
}

// Genre movie genre
type Genre struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// MovieDetail /movie/{id} response
type MovieDetail struct {
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	Tagline       string  `json:"tagline"`
	Status        string  `json:"status"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`
	Homepage      string  `json:"homepage"`
	IMDbID        string  `json:"imdb_id"`
	Genres        []Genre `json:"genres"`
	ID            int64   `json:"id"`
	VoteAverage   float64 `json:"vote_average"`
	Popularity    float64 `json:"popularity"`
	VoteCount     int     `json:"vote_count"`
	Runtime       int     `json:"runtime"`
	Adult         bool    `json:"adult"`
}

// Page paginated movie list
type Page struct {
	Results      []Movie `json:"results"`
	Page         int     `json:"page"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// apiError TMDB error body
type apiError struct {
	StatusMessage string `json:"status_message"`
	StatusCode    int    `json:"status_code"`
	Success       bool   `json:"success"`
}
