package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type ConfigStruct struct {
	Port                      string
	AccessTokenSecret         string
	RefreshTokenSecret        string
	AccessTokenExpireHour     int
	RefreshTokenExpireDay     int
	WaitForRedisConnectionSec int
	RedisUrl                  string
	RedisPassword             string
	MongodbDatabaseUrl        string
	MongodbDatabaseName       string
	RabbitmqUrl               string
	TmdbApiKey                string
	TmdbBaseUrl               string
	ServerAddress             string
	CorsAllowedOrigins        []string
	SentryDns                 string
	SentryRelease             string
	PrintErrors               bool
	DbUrl                     string
	Domain                    string
	FirebaseAuthKeyPath       string
	ProfileImageDir           string
	TaskWorkersPerQueue       int
}

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	configs.Port = os.Getenv("PORT")
	configs.DbUrl = os.Getenv("POSTGRES_DATABASE_URL")
	configs.AccessTokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	configs.RefreshTokenSecret = os.Getenv("REFRESH_TOKEN_SECRET")
	configs.AccessTokenExpireHour, _ = strconv.Atoi(os.Getenv("ACCESS_TOKEN_EXPIRE_HOUR"))
	if configs.AccessTokenExpireHour == 0 {
		configs.AccessTokenExpireHour = 1
	}
	configs.RefreshTokenExpireDay, _ = strconv.Atoi(os.Getenv("REFRESH_TOKEN_EXPIRE_DAY"))
	if configs.RefreshTokenExpireDay == 0 {
		configs.RefreshTokenExpireDay = 30
	}
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.MongodbDatabaseUrl = os.Getenv("MONGODB_DATABASE_URL")
	configs.MongodbDatabaseName = os.Getenv("MONGODB_DATABASE_NAME")
	configs.RabbitmqUrl = os.Getenv("RABBITMQ_URL")
	configs.TmdbApiKey = os.Getenv("TMDB_API_KEY")
	configs.TmdbBaseUrl = os.Getenv("TMDB_BASE_URL")
	if configs.TmdbBaseUrl == "" {
		configs.TmdbBaseUrl = "https://api.themoviedb.org/3"
	}
	configs.WaitForRedisConnectionSec, _ = strconv.Atoi(os.Getenv("WAIT_REDIS_CONNECTION_SEC"))
	configs.CorsAllowedOrigins = strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), "---")
	for i := range configs.CorsAllowedOrigins {
		configs.CorsAllowedOrigins[i] = strings.TrimSpace(configs.CorsAllowedOrigins[i])
	}
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
	configs.ServerAddress = os.Getenv("SERVER_ADDRESS")
	configs.Domain = os.Getenv("DOMAIN")
	configs.FirebaseAuthKeyPath = os.Getenv("FIREBASE_AUTH_KEY_PATH")
	configs.ProfileImageDir = os.Getenv("PROFILE_IMAGE_DIR")
	if configs.ProfileImageDir == "" {
		configs.ProfileImageDir = "./uploads/profile_images/"
	}
	configs.TaskWorkersPerQueue, _ = strconv.Atoi(os.Getenv("TASK_WORKERS_PER_QUEUE"))
	if configs.TaskWorkersPerQueue == 0 {
		configs.TaskWorkersPerQueue = 2
	}
}
