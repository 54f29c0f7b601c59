package model

import "time"

type Favorite struct {
	Id          int64     `gorm:"column:id;type:serial;autoIncrement;primaryKey;" json:"id"`
	UserId      int64     `gorm:"column:userId;type:integer;not null;uniqueIndex:Favorite_userId_movieId_key;" json:"userId"`
	MovieId     int64     `gorm:"column:movieId;type:integer;not null;uniqueIndex:Favorite_userId_movieId_key;" json:"movieId"`
	Title       string    `gorm:"column:title;type:text;not null;" json:"title"`
	PosterPath  string    `gorm:"column:posterPath;type:text;default:\"\";not null;" json:"posterPath"`
	Overview    string    `gorm:"column:overview;type:text;default:\"\";not null;" json:"overview"`
	ReleaseDate string    `gorm:"column:releaseDate;type:text;default:\"\";not null;" json:"releaseDate"`
	VoteAverage float64   `gorm:"column:voteAverage;type:double precision;default:0;not null;" json:"voteAverage"`
	AddedAt     time.Time `gorm:"column:addedAt;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;" json:"addedAt"`
}

func (Favorite) TableName() string {
	return "Favorite"
}

//------------------------------------
//------------------------------------

type AddFavoriteRequest struct {
	MovieId     int64   `json:"movieId"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"posterPath"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"releaseDate"`
	VoteAverage float64 `json:"voteAverage"`
}

type FavoritesListRes struct {
	Favorites []Favorite `json:"favorites"`
	Page      int        `json:"page"`
	Total     int64      `json:"total"`
}

//------------------------------------
//------------------------------------

type TopMovieRes struct {
	MovieId int64  `gorm:"column:movieId" json:"movieId"`
	Title   string `gorm:"column:title" json:"title"`
	Count   int64  `gorm:"column:count" json:"count"`
}

type TopUserRes struct {
	Username string `gorm:"column:username" json:"username"`
	Count    int64  `gorm:"column:count" json:"favorites"`
}
