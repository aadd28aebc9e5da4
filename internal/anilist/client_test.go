package anilist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seasonResponse = `{
	"data": {
		"Page": {
			"media": [
				{
					"id": 1,
					"title": {"romaji": "Bravo Romaji", "english": "Bravo", "native": null},
					"startDate": {"year": 2024, "month": 7, "day": 3},
					"endDate": {"year": null, "month": null, "day": null},
					"episodes": 12,
					"season": "SUMMER",
					"format": "TV",
					"status": "RELEASING",
					"genres": ["Action"],
					"meanScore": 75
				},
				{
					"id": 2,
					"title": {"romaji": "Alpha Romaji", "english": "Alpha"},
					"startDate": {"year": null, "month": 7, "day": 1},
					"endDate": {"year": null, "month": null, "day": null}
				}
			]
		}
	}
}`

func TestMediaSeason(t *testing.T) {
	var gotRequest graphqlRequest
	var gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(seasonResponse))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{Endpoint: server.URL})

	filter := SeasonFilter{
		Status: []string{"RELEASING", "NOT_YET_RELEASED"},
		Format: []string{"TV"},
		Year:   2024,
		Season: "SUMMER",
	}

	media, err := client.MediaSeason(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, media, 2)

	assert.Equal(t, "application/json", gotContentType)
	assert.Contains(t, gotRequest.Query, "GetMedia")
	assert.Equal(t, "SUMMER", gotRequest.Variables["season"])
	assert.Equal(t, float64(2024), gotRequest.Variables["year"])

	first := media[0]
	require.NotNil(t, first.Title.Romaji)
	assert.Equal(t, "Bravo Romaji", *first.Title.Romaji)
	require.NotNil(t, first.Title.English)
	assert.Equal(t, "Bravo", *first.Title.English)
	assert.Nil(t, first.Title.Native, "explicit null decodes to nil")
	require.NotNil(t, first.StartDate.Day)
	assert.Equal(t, 3, *first.StartDate.Day)

	second := media[1]
	assert.Nil(t, second.Title.Native, "absent key decodes to nil, same as null")
	assert.Nil(t, second.StartDate.Year)
	require.NotNil(t, second.StartDate.Month)
	assert.Equal(t, 7, *second.StartDate.Month)
}

func TestMediaSeasonNon200(t *testing.T) {
	statuses := []int{
		http.StatusBadRequest,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
	}

	for _, status := range statuses {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := NewClient(ClientConfig{Endpoint: server.URL})
		media, err := client.MediaSeason(context.Background(), SeasonFilter{Season: "SUMMER"})

		assert.Nil(t, media)
		assert.ErrorIs(t, err, ErrNoData, "status %d should map to ErrNoData", status)

		server.Close()
	}
}

func TestMediaSeasonTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(ClientConfig{Endpoint: server.URL})
	_, err := client.MediaSeason(context.Background(), SeasonFilter{})

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoData), "transport failures are not the no-data case")
}

func TestMediaSeasonMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{Endpoint: server.URL})
	_, err := client.MediaSeason(context.Background(), SeasonFilter{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(ClientConfig{})

	assert.Equal(t, DefaultEndpoint, client.endpoint)
	assert.NotNil(t, client.resty)
	assert.NotNil(t, client.logger)
}
