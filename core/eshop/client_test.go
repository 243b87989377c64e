package eshop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server, retries int) *Client {
	return NewClient(Config{
		AmericasURL:       srv.URL + "/americas",
		EuropeURL:         srv.URL + "/europe",
		PriceURL:          srv.URL + "/price",
		RequestsPerSecond: 1000,
		MaxRetries:        retries,
	})
}

func TestClient_FetchAmericasPaginates(t *testing.T) {
	total := americasPageSize + 5
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/americas", r.URL.Path)
		assert.Equal(t, "switch", r.URL.Query().Get("system"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		var games []map[string]any
		for i := offset; i < total && i < offset+americasPageSize; i++ {
			games = append(games, map[string]any{
				"id":            fmt.Sprintf("us-%d", i),
				"title":         fmt.Sprintf("Game %d", i),
				"front_box_art": "https://img/us.png",
				"release_date":  "Mar 3, 2017",
				"nsuid":         json.Number(strconv.Itoa(70010000000000 + i)),
				"game_code":     "HACPAAAAA",
			})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"filter": map[string]any{"total": total},
			"games":  map[string]any{"game": games},
		})
	}))
	defer srv.Close()

	games, err := newTestClient(srv, 0).FetchGames(context.Background(), RegionAmericas)
	require.NoError(t, err)
	require.Len(t, games, total)

	first := games[0]
	assert.Equal(t, RegionAmericas, first.Region)
	assert.Equal(t, "us-0", first.ID)
	assert.Equal(t, "70010000000000", first.NSUID)
	assert.Equal(t, "HACPAAAAA", first.ProductCode)
	assert.Equal(t, "https://img/us.png", first.Art)
}

func TestClient_FetchEurope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/europe", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("fq"), "nintendoswitch")
		_, _ = w.Write([]byte(`{"response":{"numFound":1,"docs":[{
			"fs_id":"1173281","title":"Zelda","image_url":"https://img/eu.png",
			"image_url_sq_s":"https://img/eu_sq.png","dates_released_dts":["2017-03-03T00:00:00Z"],
			"nsuid_txt":["70010000000023"],"product_code_txt":["HACPAAAAB"]}]}}`))
	}))
	defer srv.Close()

	games, err := newTestClient(srv, 0).FetchGames(context.Background(), RegionEurope)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, RawGame{
		Region:      RegionEurope,
		ID:          "1173281",
		Title:       "Zelda",
		Art:         "https://img/eu.png",
		SquareArt:   "https://img/eu_sq.png",
		ReleaseDate: "2017-03-03T00:00:00Z",
		NSUID:       "70010000000023",
		ProductCode: "HACPAAAAB",
	}, games[0])
}

func TestClient_FetchGamesUnknownRegion(t *testing.T) {
	_, err := NewClient(Config{}).FetchGames(context.Background(), Region("asia"))
	assert.ErrorIs(t, err, ErrUnknownRegion)
}

func TestClient_FetchPricesBatches(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "US", r.URL.Query().Get("country"))
		assert.Equal(t, "en", r.URL.Query().Get("lang"))
		ids := strings.Split(r.URL.Query().Get("ids"), ",")
		assert.LessOrEqual(t, len(ids), priceBatchSize)

		var prices []string
		for _, id := range ids {
			prices = append(prices, fmt.Sprintf(`{"title_id":%s,"sales_status":"onsale","regular_price":{"amount":"$59.99","currency":"USD","raw_value":"59.99"}}`, id))
		}
		_, _ = w.Write([]byte(`{"country":"US","prices":[` + strings.Join(prices, ",") + `]}`))
	}))
	defer srv.Close()

	var ids []string
	for i := 0; i < priceBatchSize+1; i++ {
		ids = append(ids, strconv.Itoa(70010000000000+i))
	}

	prices, err := newTestClient(srv, 0).FetchPrices(context.Background(), RegionAmericas, "US", ids)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	require.Len(t, prices, len(ids))
	assert.Equal(t, "70010000000000", prices[0].TitleID)
	assert.Contains(t, string(prices[0].Body), `"sales_status":"onsale"`)
}

func TestClient_FetchPricesEmpty(t *testing.T) {
	prices, err := NewClient(Config{PriceURL: "http://127.0.0.1:1"}).FetchPrices(context.Background(), RegionEurope, "IE", nil)
	assert.NoError(t, err)
	assert.Empty(t, prices)
}

func TestClient_StatusErrors(t *testing.T) {
	t.Run("NoRetryByDefault", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := newTestClient(srv, 0).FetchGames(context.Background(), RegionEurope)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("RetriesServerErrors", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(`{"response":{"numFound":0,"docs":[]}}`))
		}))
		defer srv.Close()

		games, err := newTestClient(srv, 1).FetchGames(context.Background(), RegionEurope)
		require.NoError(t, err)
		assert.Empty(t, games)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("ClientErrorNotRetried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := newTestClient(srv, 3).FetchGames(context.Background(), RegionAmericas)
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestPrice_JSONRoundTrip(t *testing.T) {
	raw := `{"title_id":70010000000025,"regular_price":{"amount":"$59.99"}}`

	var p Price
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, "70010000000025", p.TitleID)

	out, err := json.Marshal(map[string]Price{"US": p})
	require.NoError(t, err)
	assert.JSONEq(t, `{"US":`+raw+`}`, string(out))

	out, err = json.Marshal(Price{TitleID: "1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title_id":"1"}`, string(out))
}
