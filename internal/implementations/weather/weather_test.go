package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReporter(t *testing.T, handler http.HandlerFunc) *OpenWeatherMap {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	baseURL, err := url.Parse(server.URL)
	require.Nil(t, err)
	return NewOpenWeatherMap(logging.NewFakeLogger(), *baseURL, "key", time.Second)
}

func TestReport(t *testing.T) {
	var query url.Values
	reporter := newReporter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Paris","weather":[{"description":"light rain"}],"main":{"temp":12.3}}`))
	})

	report, err := reporter.Report(context.Background(), "paris")

	require.Nil(t, err)
	assert.Equal(t, weather.Report{City: "Paris", Description: "light rain", Temperature: 12.3}, report)
	assert.Equal(t, "paris", query.Get("q"))
	assert.Equal(t, "key", query.Get("appid"))
	assert.Equal(t, "metric", query.Get("units"))
}

func TestReportCityNotFound(t *testing.T) {
	reporter := newReporter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	})

	_, err := reporter.Report(context.Background(), "atlantis")

	assert.ErrorIs(t, err, weather.ErrCityNotFound)
}

func TestReportFailures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"unauthorized": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		},
		"malformed": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"name":`))
		},
		"no conditions": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"name":"Paris","weather":[],"main":{"temp":1}}`))
		},
	}
	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			reporter := newReporter(t, handler)

			_, err := reporter.Report(context.Background(), "paris")

			assert.Error(t, err)
			assert.NotErrorIs(t, err, weather.ErrCityNotFound)
		})
	}
}

func TestReportWithoutCity(t *testing.T) {
	reporter := NewOpenWeatherMap(logging.NewFakeLogger(), url.URL{}, "key", time.Second)

	_, err := reporter.Report(context.Background(), "")

	assert.ErrorIs(t, err, weather.ErrCityNotSpecified)
}
