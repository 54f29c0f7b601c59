package configs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DbConfigData struct {
	Id                         primitive.ObjectID `bson:"_id"`
	Title                      string             `bson:"title"`
	CorsAllowedOrigins         []string           `bson:"corsAllowedOrigins"`
	DisableNotifications       bool               `bson:"disableNotifications"`
	TrendingRefreshPages       int                `bson:"trendingRefreshPages"`
	ProfileFileSizeLimit       int64              `bson:"profileFileSizeLimit"`
	ProfileImageExtensionLimit string             `bson:"profileImageExtensionLimit"`
}

var rwm sync.RWMutex
var dbConfigs = DbConfigData{
	TrendingRefreshPages: 3,
	ProfileFileSizeLimit: 2 * 1024 * 1024,
}

func GetDbConfigs() DbConfigData {
	rwm.RLock()
	defer rwm.RUnlock()
	return dbConfigs
}

func LoadDbConfigs(mongodb *mongo.Database) {
	tick := time.NewTicker(15 * time.Minute)
	load(mongodb)
	for range tick.C {
		load(mongodb)
	}
}

func load(mongodb *mongo.Database) {
	rwm.Lock()
	defer rwm.Unlock()
	err := mongodb.
		Collection("configs").
		FindOne(context.Background(), bson.D{{Key: "title", Value: "server configs"}}).
		Decode(&dbConfigs)
	if err != nil {
		errorMessage := fmt.Sprintf("could not get dbConfig from mongodb: %s", err)
		if configs.PrintErrors {
			log.Println(errorMessage)
		}
		sentry.CaptureException(err)
	}
	if dbConfigs.TrendingRefreshPages == 0 {
		dbConfigs.TrendingRefreshPages = 3
	}
}
