package client

import (
	"errors"
	"fmt"
	"movie_discovery/configs"
	"net/url"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
)

var ErrMovieNotFound = errors.New("tmdb: movie not found")

type ITmdbClient interface {
	GetTrendingMovies(page int) ([]byte, error)
	SearchMovies(query string, page int) ([]byte, error)
	GetMovieDetails(movieId int64) ([]byte, error)
	GetRecommendedMovies(movieId int64) ([]byte, error)
}

type TmdbClient struct {
	baseUrl string
	apiKey  string
	client  *fasthttp.Client
	timeout time.Duration
}

func NewTmdbClient() *TmdbClient {
	return &TmdbClient{
		baseUrl: configs.GetConfigs().TmdbBaseUrl,
		apiKey:  configs.GetConfigs().TmdbApiKey,
		client: &fasthttp.Client{
			MaxConnsPerHost: 100,
		},
		timeout: 10 * time.Second,
	}
}

func NewTmdbClientWith(baseUrl string, apiKey string) *TmdbClient {
	c := NewTmdbClient()
	c.baseUrl = baseUrl
	c.apiKey = apiKey
	return c
}

//------------------------------------------
//------------------------------------------

func (t *TmdbClient) GetTrendingMovies(page int) ([]byte, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	return t.makeRequest("trending/movie/week", params)
}

func (t *TmdbClient) SearchMovies(query string, page int) ([]byte, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	return t.makeRequest("search/movie", params)
}

func (t *TmdbClient) GetMovieDetails(movieId int64) ([]byte, error) {
	return t.makeRequest(fmt.Sprintf("movie/%v", movieId), url.Values{})
}

func (t *TmdbClient) GetRecommendedMovies(movieId int64) ([]byte, error) {
	return t.makeRequest(fmt.Sprintf("movie/%v/recommendations", movieId), url.Values{})
}

//------------------------------------------
//------------------------------------------

func (t *TmdbClient) makeRequest(endpoint string, params url.Values) ([]byte, error) {
	params.Set("api_key", t.apiKey)

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	res := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(res)

	req.SetRequestURI(t.baseUrl + "/" + endpoint + "?" + params.Encode())
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", "application/json;charset=utf-8")

	err := t.client.DoTimeout(req, res, t.timeout)
	if err != nil {
		return nil, fmt.Errorf("tmdb: request failed: %w", err)
	}

	switch res.StatusCode() {
	case fasthttp.StatusOK:
		// response body gets recycled with the fasthttp response
		body := append([]byte(nil), res.Body()...)
		return body, nil
	case fasthttp.StatusNotFound:
		return nil, ErrMovieNotFound
	default:
		return nil, fmt.Errorf("tmdb: unexpected status %d for %s", res.StatusCode(), endpoint)
	}
}
