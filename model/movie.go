package model

import "time"

// MovieDetail holds the subset of a TMDb movie detail payload this
// service inspects. Cached payloads stay opaque, this is only decoded
// for the mongodb mirror and notifications.
type MovieDetail struct {
	MovieId     int64   `bson:"movieId" json:"id"`
	Title       string  `bson:"title" json:"title"`
	Overview    string  `bson:"overview" json:"overview"`
	PosterPath  string  `bson:"posterPath" json:"poster_path"`
	ReleaseDate string  `bson:"releaseDate" json:"release_date"`
	VoteAverage float64 `bson:"voteAverage" json:"vote_average"`
	VoteCount   int64   `bson:"voteCount" json:"vote_count"`
	Popularity  float64 `bson:"popularity" json:"popularity"`
}

// MovieDoc is the mongodb mirror document for a fetched movie.
type MovieDoc struct {
	MovieId   int64       `bson:"_id"`
	Detail    MovieDetail `bson:"detail"`
	UpdatedAt time.Time   `bson:"updatedAt"`
}

//------------------------------------
//------------------------------------

type MovieListPayload struct {
	Page         int           `json:"page"`
	Results      []MovieDetail `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}
