package model

type CacheStats struct {
	KeyspaceHits    int64   `json:"keyspaceHits"`
	KeyspaceMisses  int64   `json:"keyspaceMisses"`
	HitRate         float64 `json:"hitRate"`
	TotalCommands   int64   `json:"totalCommands"`
	AppCacheHits    int64   `json:"appCacheHits"`
	AppCacheMisses  int64   `json:"appCacheMisses"`
	AppCacheHitRate float64 `json:"appCacheHitRate"`
}

type AnalyticsReport struct {
	GeneratedAt    string        `json:"generatedAt"`
	TotalUsers     int64         `json:"totalUsers"`
	ActiveUsers    int64         `json:"activeUsers"`
	TotalFavorites int64         `json:"totalFavorites"`
	AverageRating  float64       `json:"averageRating"`
	TopMovies      []TopMovieRes `json:"topMovies"`
	TopUsers       []TopUserRes  `json:"topUsers"`
}
