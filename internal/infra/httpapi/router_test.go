package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/starapp/internal/infra/clock"
	"github.com/aalvaropc/starapp/internal/usecase"
)

func newTestRouter() http.Handler {
	today := clock.Fixed{T: time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)}
	return NewRouter(Deps{
		Reveal:         usecase.NewRevealReading(today),
		Signs:          usecase.NewListSigns(),
		AllowedOrigins: []string{"http://localhost:5173"},
	})
}

func get(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body any
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	}
	return rec, body
}

func path(t *testing.T, body any, expr string) any {
	t.Helper()
	v, err := jsonpath.Get(expr, body)
	require.NoError(t, err, expr)
	return v
}

func TestHealth(t *testing.T) {
	rec, _ := get(t, newTestRouter(), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestZodiac_Success(t *testing.T) {
	rec, body := get(t, newTestRouter(), "/api/zodiac?day=15&month=7&year=1990")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, "Cancer", path(t, body, "$.zodiac.sign"))
	assert.Equal(t, "cancer", path(t, body, "$.zodiac.id"))
	assert.Equal(t, "Ruby", path(t, body, "$.zodiac.birthstone"))
	assert.Equal(t, "#E0115F", path(t, body, "$.zodiac.birthstone_color"))
	assert.Equal(t, "Jun 21 - Jul 22", path(t, body, "$.zodiac.date_range"))
	assert.Equal(t, float64(1990), path(t, body, "$.birth_date.year"))
}

func TestZodiac_ValidationFailures(t *testing.T) {
	cases := []struct {
		query string
		kind  string
		msg   string
	}{
		{"day=&month=5&year=2000", "missing_fields", "Please fill in all fields (Day, Month, and Year)"},
		{"month=5&year=2000", "missing_fields", "Please fill in all fields (Day, Month, and Year)"},
		{"day=x&month=5&year=2000", "not_a_number", "Please enter valid numbers"},
		{"day=1&month=1&year=292277026597", "future_date", "You cannot enter a future date! Please enter your actual birth date."},
		{"day=1&month=1&year=1899", "year_too_early", "Please enter a year after 1900"},
		{"day=1&month=1&year=2999", "future_date", "You cannot enter a future date! Please enter your actual birth date."},
		{"day=1&month=14&year=2000", "invalid_month", "Month must be between 1 and 12"},
		{"day=29&month=2&year=2023", "invalid_day", "2023 is not a leap year. February only has 28 days in 2023"},
		{"day=31&month=6&year=2000", "invalid_day", "Invalid date! June only has 30 days"},
	}

	h := newTestRouter()
	for _, c := range cases {
		t.Run(c.query, func(t *testing.T) {
			rec, body := get(t, h, "/api/zodiac?"+c.query)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
			assert.Equal(t, c.kind, path(t, body, "$.kind"))
			assert.Equal(t, c.msg, path(t, body, "$.error"))
			assert.NotEmpty(t, path(t, body, "$.request_id"))
		})
	}
}

func TestSigns_List(t *testing.T) {
	rec, body := get(t, newTestRouter(), "/api/signs")
	require.Equal(t, http.StatusOK, rec.Code)

	list, ok := body.([]any)
	require.True(t, ok)
	assert.Len(t, list, 12)
	assert.Equal(t, "Aries", path(t, body, "$[0].sign"))
	assert.Equal(t, "Aquamarine", path(t, body, "$[11].birthstone"))
}

func TestSigns_GetOne(t *testing.T) {
	h := newTestRouter()

	rec, body := get(t, h, "/api/signs/Virgo")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sapphire", path(t, body, "$.birthstone"))

	rec, body = get(t, h, "/api/signs/ophiuchus")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", path(t, body, "$.kind"))
}

func TestCORS_Preflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/signs", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_RejectsUnknownOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/signs", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
