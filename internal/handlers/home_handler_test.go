package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danrneal/fyyur/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockListingService struct {
	recentFn func(ctx context.Context) ([]service.Listing, error)
}

func (m *mockListingService) RecentListings(ctx context.Context) ([]service.Listing, error) {
	return m.recentFn(ctx)
}

func TestHomeHandler(t *testing.T) {
	svc := &mockListingService{
		recentFn: func(ctx context.Context) ([]service.Listing, error) {
			return []service.Listing{
				{Kind: service.KindVenue, ID: 1, Name: "Hall A", CreatedAt: time.Now()},
				{Kind: service.KindArtist, ID: 2, Name: "Guns N Petals", CreatedAt: time.Now().Add(-time.Hour)},
			}, nil
		},
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", NewHomeHandler(svc).Home)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		RecentListings []service.Listing `json:"recent_listings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.RecentListings, 2)
	assert.Equal(t, service.KindVenue, resp.RecentListings[0].Kind)
	assert.Equal(t, "Guns N Petals", resp.RecentListings[1].Name)
}
