package client

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/Sternrassler/ptcg-client/internal/testutil"
	"github.com/Sternrassler/ptcg-client/pkg/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates a client pointed at the mock server.
func newTestClient(t *testing.T, mock *testutil.MockAPI, apiKey string) *Client {
	t.Helper()

	cfg := DefaultConfig()
	cfg.BaseURL = mock.URL()
	cfg.APIKey = apiKey

	c, err := New(cfg)
	require.NoError(t, err)
	c.SetHTTPClient(mock.Client())
	c.SetLogger(zerolog.Nop())
	return c
}

func testCard(id string) models.Card {
	return models.Card{
		ID:        id,
		Name:      "Card " + id,
		Supertype: "Pokémon",
		Set:       models.Set{ID: "base1", Name: "Base", Series: "Base"},
	}
}

func testCards(prefix string, n int) []models.Card {
	cards := make([]models.Card, n)
	for i := range cards {
		cards[i] = testCard(prefix + "-" + strconv.Itoa(i))
	}
	return cards
}

func testSets(n int) []models.Set {
	sets := make([]models.Set, n)
	for i := range sets {
		sets[i] = models.Set{ID: "set" + strconv.Itoa(i), Name: "Set", Series: "Test"}
	}
	return sets
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errorMsg    string
	}{
		{
			name:   "default config",
			config: DefaultConfig(),
		},
		{
			name:   "with api key",
			config: Config{BaseURL: "http://localhost:8080/v2", APIKey: "abc123"},
		},
		{
			name:        "empty base url",
			config:      Config{},
			expectError: true,
			errorMsg:    "base url is required",
		},
		{
			name:        "relative base url",
			config:      Config{BaseURL: "api.pokemontcg.io"},
			expectError: true,
			errorMsg:    `invalid base url "api.pokemontcg.io"`,
		},
		{
			name:        "api key with newline",
			config:      Config{BaseURL: DefaultBaseURL, APIKey: "abc\n123"},
			expectError: true,
			errorMsg:    "invalid api key: not a valid header value",
		},
		{
			name:        "negative timeout",
			config:      Config{BaseURL: DefaultBaseURL, Timeout: -time.Second},
			expectError: true,
			errorMsg:    "timeout must be >= 0 (got -1s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.config)

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, tt.errorMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://api.pokemontcg.io/v2", cfg.BaseURL)
	assert.Empty(t, cfg.APIKey)
	assert.NotEmpty(t, cfg.UserAgent)
	assert.Greater(t, cfg.Timeout, time.Duration(0))
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c, err := New(Config{BaseURL: "https://api.pokemontcg.io/v2/"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.pokemontcg.io/v2", c.BaseURL())
}

func TestGetCard_SendsRequestWithProperID(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetJSON("/cards/base1-5", http.StatusOK, testutil.DataBody(testCard("base1-5"), -1))

	c := newTestClient(t, mock, "")
	card, err := c.GetCard(context.Background(), "base1-5")

	require.NoError(t, err)
	assert.Equal(t, "base1-5", card.ID)
	assert.Equal(t, 1, mock.GetRequestCount("/cards/base1-5"))
}

func TestDo_AppendsAPIKeyToHeader(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetError("/cards/base1-5", 400, "bad")

	c := newTestClient(t, mock, "abc123")
	_, _ = c.GetCard(context.Background(), "base1-5")

	req, ok := mock.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "abc123", req.Header.Get(APIKeyHeader))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, DefaultConfig().UserAgent, req.Header.Get("User-Agent"))
}

func TestDo_OmitsAPIKeyWhenUnset(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetJSON("/types", http.StatusOK, testutil.DataBody([]string{"Fire"}, -1))

	c := newTestClient(t, mock, "")
	_, err := c.GetTypes(context.Background())
	require.NoError(t, err)

	req, _ := mock.LastRequest()
	_, present := req.Header[APIKeyHeader]
	assert.False(t, present, "X-Api-Key should not be sent without a key")
}

func TestSearchCards_SendsRequestWithParams(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetJSON("/cards", http.StatusOK, testutil.DataBody([]models.Card{}, 0))

	c := newTestClient(t, mock, "")
	_, err := c.SearchCards(context.Background(), SearchParams{
		Query:    "name:celebi",
		Page:     1,
		PageSize: 250,
		OrderBy:  []string{"name", "-number"},
	})
	require.NoError(t, err)

	req, ok := mock.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "/cards", req.Path)
	assert.Equal(t, "name:celebi", req.Query.Get("q"))
	assert.Equal(t, "1", req.Query.Get("page"))
	assert.Equal(t, "250", req.Query.Get("pageSize"))
	assert.Equal(t, "name,-number", req.Query.Get("orderBy"))
}

func TestSearchCards_OmitsUnsetParams(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetJSON("/cards", http.StatusOK, testutil.DataBody([]models.Card{}, 0))

	c := newTestClient(t, mock, "")
	_, err := c.SearchCards(context.Background(), NewSearch("name:pikachu"))
	require.NoError(t, err)

	req, _ := mock.LastRequest()
	assert.Len(t, req.Query, 1)
	assert.Equal(t, "name:pikachu", req.Query.Get("q"))
}

func TestSearchCards_PreservesServerOrder(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	want := []models.Card{testCard("c"), testCard("a"), testCard("b")}
	mock.SetJSON("/cards", http.StatusOK, testutil.DataBody(want, 3))

	c := newTestClient(t, mock, "")
	got, err := c.SearchCards(context.Background(), SearchParams{})
	require.NoError(t, err)

	require.Len(t, got, 3)
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
	}
}

func TestSearchCardsPage_ReturnsTotalCount(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetJSON("/cards", http.StatusOK, testutil.DataBody(testCards("p", 2), 1337))

	c := newTestClient(t, mock, "")
	page, err := c.SearchCardsPage(context.Background(), SearchParams{PageSize: 2})
	require.NoError(t, err)

	require.NotNil(t, page.TotalCount)
	assert.Equal(t, 1337, *page.TotalCount)
	assert.Len(t, page.Items, 2)
}

func TestSearchCards_InvalidParamsSendNoRequest(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	c := newTestClient(t, mock, "")
	_, err := c.SearchCards(context.Background(), SearchParams{PageSize: 251})

	assert.ErrorIs(t, err, ErrInvalidParams)
	assert.Empty(t, mock.Requests())
}

func TestGetCard_BadRequestPreservesMessage(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetError("/cards/base1-5", 400, "Bad Request. Your request is either malformed, or is missing one or more required fields.")

	c := newTestClient(t, mock, "")
	card, err := c.GetCard(context.Background(), "base1-5")

	assert.Nil(t, card)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindBadRequest, apiErr.Kind)
	assert.Equal(t, 400, apiErr.Code)
	assert.Equal(t, "Bad Request. Your request is either malformed, or is missing one or more required fields.", apiErr.Message)
}

func TestGetCard_ErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		sentinel error
	}{
		{"payment required", 402, ErrRequestFailed},
		{"forbidden", 403, ErrForbidden},
		{"not found", 404, ErrNotFound},
		{"rate limited", 429, ErrTooManyRequests},
		{"server error", 503, ErrServerError},
		{"unknown code", 418, ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.NewMockAPI()
			defer mock.Close()
			mock.SetError("/cards/x", tt.code, tt.name)

			c := newTestClient(t, mock, "")
			_, err := c.GetCard(context.Background(), "x")

			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, 1, mock.GetRequestCount("/cards/x"), "errors must not be retried")
		})
	}
}

func TestGetCard_UndecodableBody(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetResponse("/cards/base1-5", testutil.MockResponse{StatusCode: http.StatusBadRequest})

	c := newTestClient(t, mock, "")
	_, err := c.GetCard(context.Background(), "base1-5")

	assert.Equal(t, KindDecodeFailed, KindOf(err))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Code)
}

func TestGetCard_UnknownEnvelopeShape(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetResponse("/cards/base1-5", testutil.MockResponse{StatusCode: http.StatusOK, Body: `{"status":"ok"}`})

	c := newTestClient(t, mock, "")
	_, err := c.GetCard(context.Background(), "base1-5")

	assert.ErrorIs(t, err, ErrDecodeFailed)
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestGetCard_NullOrMisnamedDataIsDecodeFailure(t *testing.T) {
	for _, body := range []string{`{"data":null}`, `{"DATA":{"id":"base1-5"}}`} {
		t.Run(body, func(t *testing.T) {
			mock := testutil.NewMockAPI()
			defer mock.Close()
			mock.SetResponse("/cards/base1-5", testutil.MockResponse{StatusCode: http.StatusOK, Body: body})

			c := newTestClient(t, mock, "")
			card, err := c.GetCard(context.Background(), "base1-5")

			assert.Nil(t, card)
			assert.Equal(t, KindDecodeFailed, KindOf(err))
			assert.ErrorIs(t, err, ErrMalformedEnvelope)
		})
	}
}

func TestGetCard_TransportFailure(t *testing.T) {
	mock := testutil.NewMockAPI()
	c := newTestClient(t, mock, "")
	mock.Close()

	_, err := c.GetCard(context.Background(), "base1-5")

	assert.ErrorIs(t, err, ErrRequestError)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Code)
	assert.NotNil(t, apiErr.Unwrap())
}

func TestGetAllCards_MakesMultipleRequests(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	// One card per page, but a total greater than a single page.
	mock.SetHandler("/cards", testutil.PagedHandler([][]models.Card{{testCard("a")}, {testCard("b")}, {testCard("c")}}, 251, nil))

	c := newTestClient(t, mock, "")
	cards, err := c.GetAllCards(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, mock.GetRequestCount("/cards"))
	assert.Len(t, cards, 2)
}

func TestGetAllCards_PageCountMatchesTotal(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		wantPages int
	}{
		{"single partial page", 17, 1},
		{"exactly one page", 250, 1},
		{"one over a page", 251, 2},
		{"exactly two pages", 500, 2},
		{"three pages", 612, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pages [][]models.Card
			for remaining, n := tt.total, 0; remaining > 0; n++ {
				size := min(remaining, 250)
				pages = append(pages, testCards("p"+strconv.Itoa(n), size))
				remaining -= size
			}

			mock := testutil.NewMockAPI()
			defer mock.Close()
			mock.SetHandler("/cards", testutil.PagedHandler(pages, tt.total, nil))

			c := newTestClient(t, mock, "")
			cards, err := c.GetAllCards(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.wantPages, mock.GetRequestCount("/cards"))
			assert.Len(t, cards, tt.total)
			assert.Equal(t, pages[0][0].ID, cards[0].ID)
			last := pages[len(pages)-1]
			assert.Equal(t, last[len(last)-1].ID, cards[len(cards)-1].ID)
		})
	}
}

func TestGetAllCards_NoTotalCountFetchesOnePage(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetHandler("/cards", testutil.PagedHandler([][]models.Card{testCards("a", 250), testCards("b", 250)}, -1, nil))

	c := newTestClient(t, mock, "")
	cards, err := c.GetAllCards(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, mock.GetRequestCount("/cards"))
	assert.Len(t, cards, 250)
}

func TestGetAllCards_SendsOnlyPageParameter(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetHandler("/cards", testutil.PagedHandler([][]models.Card{testCards("a", 250), testCards("b", 1)}, 251, nil))

	c := newTestClient(t, mock, "")
	_, err := c.GetAllCards(context.Background())
	require.NoError(t, err)

	requests := mock.Requests()
	require.Len(t, requests, 2)
	for i, req := range requests {
		assert.Equal(t, strconv.Itoa(i+1), req.Query.Get("page"))
		assert.Len(t, req.Query, 1, "get-all must not send pageSize, q or orderBy")
	}
}

func TestGetAllCards_ErrorDiscardsPartialResults(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	pages := [][]models.Card{testCards("a", 250), testCards("b", 250), testCards("c", 10)}
	mock.SetHandler("/cards", testutil.PagedHandler(pages, 510, map[int]int{2: 404}))

	c := newTestClient(t, mock, "")
	cards, err := c.GetAllCards(context.Background())

	assert.Nil(t, cards)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, mock.GetRequestCount("/cards"), "no page after the failing one is requested")
}

func TestGetAllSets_SendsRequestToCorrectURL(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetJSON("/sets", http.StatusOK, testutil.DataBody(testSets(3), 3))

	c := newTestClient(t, mock, "")
	sets, err := c.GetAllSets(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, mock.GetRequestCount("/sets"))
	assert.Len(t, sets, 3)
}

func TestGetAllSets_ShortFirstPageStopsRegardlessOfCount(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetHandler("/sets", testutil.PagedHandler([][]models.Set{testSets(120), testSets(120)}, 1000, nil))

	c := newTestClient(t, mock, "")
	sets, err := c.GetAllSets(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, mock.GetRequestCount("/sets"))
	assert.Len(t, sets, 120)
}

func TestGetAllSets_FullPagesThenShortPage(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetHandler("/sets", testutil.PagedHandler([][]models.Set{testSets(250), testSets(50)}, 300, nil))

	c := newTestClient(t, mock, "")
	sets, err := c.GetAllSets(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, mock.GetRequestCount("/sets"))
	assert.Len(t, sets, 300)
}

func TestGetAllSets_FailureOnFirstPage(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetError("/sets", 500, "Internal Server Error")

	c := newTestClient(t, mock, "")
	sets, err := c.GetAllSets(context.Background())

	assert.Nil(t, sets)
	assert.ErrorIs(t, err, ErrServerError)
}

func TestGetSet_SendsRequestWithProperID(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetJSON("/sets/base1", http.StatusOK, testutil.DataBody(models.Set{ID: "base1", Name: "Base", Series: "Base", Total: 102}, -1))

	c := newTestClient(t, mock, "")
	set, err := c.GetSet(context.Background(), "base1")
	require.NoError(t, err)

	assert.Equal(t, "base1", set.ID)
	assert.Equal(t, 102, set.Total)
	assert.Equal(t, 1, mock.GetRequestCount("/sets/base1"))
}

func TestSearchSets_SendsRequestWithParams(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetJSON("/sets", http.StatusOK, testutil.DataBody(testSets(1), 1))

	c := newTestClient(t, mock, "")
	sets, err := c.SearchSets(context.Background(), SearchParams{
		Query:    "name:base1",
		Page:     1,
		PageSize: 250,
		OrderBy:  []string{"name", "-number"},
	})
	require.NoError(t, err)
	assert.Len(t, sets, 1)

	req, _ := mock.LastRequest()
	assert.Equal(t, "name:base1", req.Query.Get("q"))
	assert.Equal(t, "1", req.Query.Get("page"))
	assert.Equal(t, "250", req.Query.Get("pageSize"))
	assert.Equal(t, "name,-number", req.Query.Get("orderBy"))
}

func TestTaxonomies_HitCorrectURL(t *testing.T) {
	tests := []struct {
		path string
		call func(*Client, context.Context) ([]string, error)
	}{
		{"/types", (*Client).GetTypes},
		{"/subtypes", (*Client).GetSubtypes},
		{"/supertypes", (*Client).GetSupertypes},
		{"/rarities", (*Client).GetRarities},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			mock := testutil.NewMockAPI()
			defer mock.Close()
			mock.SetJSON(tt.path, http.StatusOK, testutil.DataBody([]string{"One", "Two"}, -1))

			c := newTestClient(t, mock, "")
			values, err := tt.call(c, context.Background())
			require.NoError(t, err)

			assert.Equal(t, []string{"One", "Two"}, values)
			assert.Equal(t, 1, mock.GetRequestCount(tt.path))
		})
	}
}

func TestIndependentCallsRunConcurrently(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetHandler("/cards", testutil.PagedHandler([][]models.Card{testCards("a", 250), testCards("b", 5)}, 255, nil))
	mock.SetHandler("/sets", testutil.PagedHandler([][]models.Set{testSets(7)}, 7, nil))

	c := newTestClient(t, mock, "")

	var wg sync.WaitGroup
	var cards []models.Card
	var sets []models.Set
	var cardsErr, setsErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		cards, cardsErr = c.GetAllCards(context.Background())
	}()
	go func() {
		defer wg.Done()
		sets, setsErr = c.GetAllSets(context.Background())
	}()
	wg.Wait()

	require.NoError(t, cardsErr)
	require.NoError(t, setsErr)
	assert.Len(t, cards, 255)
	assert.Len(t, sets, 7)
}

func TestGet_ContextCancelled(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetJSON("/types", http.StatusOK, testutil.DataBody([]string{}, -1))

	c := newTestClient(t, mock, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetTypes(ctx)
	assert.ErrorIs(t, err, ErrRequestError)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEndpointLabel(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"cards", "/cards"},
		{"/cards/base1-4", "/cards/:id"},
		{"sets/", "/sets"},
		{"", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := endpointLabel(tt.path); got != tt.expected {
				t.Errorf("endpointLabel(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}
