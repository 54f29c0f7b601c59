package repository

import (
	"context"
	"movie_discovery/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IMovieRepository interface {
	UpsertMovieData(detail *model.MovieDetail) error
	GetMovieData(movieId int64) (*model.MovieDoc, error)
}

type MovieRepository struct {
	mongodb *mongo.Database
}

func NewMovieRepository(mongodb *mongo.Database) *MovieRepository {
	return &MovieRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

// UpsertMovieData mirrors a fetched movie detail into mongodb so
// analytics and recommendation tasks don't re-hit the metadata api.
func (m *MovieRepository) UpsertMovieData(detail *model.MovieDetail) error {
	filter := bson.D{
		{Key: "_id", Value: detail.MovieId},
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "detail", Value: detail},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}},
	}
	opts := options.Update().SetUpsert(true)

	_, err := m.mongodb.
		Collection("movies").
		UpdateOne(context.TODO(), filter, update, opts)

	return err
}

func (m *MovieRepository) GetMovieData(movieId int64) (*model.MovieDoc, error) {
	var result model.MovieDoc
	err := m.mongodb.
		Collection("movies").
		FindOne(context.TODO(), bson.D{{Key: "_id", Value: movieId}}).
		Decode(&result)

	if err != nil {
		return nil, err
	}
	return &result, nil
}
