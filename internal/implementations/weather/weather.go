package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/weather"
)

const currentWeatherPath = "/data/2.5/weather"

type currentWeather struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

func (w *currentWeather) FromJSON(reader io.Reader) error {
	decoder := json.NewDecoder(reader)
	return decoder.Decode(w)
}

// OpenWeatherMap reports current conditions in metric units.
type OpenWeatherMap struct {
	log        logging.Logger
	httpClient http.Client
	baseURL    url.URL
	apiKey     string
}

func NewOpenWeatherMap(log logging.Logger, baseURL url.URL, apiKey string, timeout time.Duration) *OpenWeatherMap {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &OpenWeatherMap{
		log:        log,
		httpClient: http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

func (o *OpenWeatherMap) Report(ctx context.Context, city string) (weather.Report, error) {
	if city == "" {
		return weather.Report{}, weather.ErrCityNotSpecified
	}

	endpoint := o.baseURL
	endpoint.Path = currentWeatherPath
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", o.apiKey)
	query.Set("units", "metric")
	endpoint.RawQuery = query.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return weather.Report{}, err
	}
	response, err := o.httpClient.Do(request)
	if err != nil {
		return weather.Report{}, fmt.Errorf("weather API error: %w", err)
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusNotFound:
		return weather.Report{}, fmt.Errorf("%w: %s", weather.ErrCityNotFound, city)
	case response.StatusCode != http.StatusOK:
		return weather.Report{}, fmt.Errorf("weather API returned %d", response.StatusCode)
	}

	result := currentWeather{}
	if err := result.FromJSON(response.Body); err != nil {
		return weather.Report{}, fmt.Errorf("decode weather response: %w", err)
	}
	if len(result.Weather) == 0 {
		return weather.Report{}, fmt.Errorf("weather response has no conditions")
	}

	report := weather.Report{
		City:        result.Name,
		Description: result.Weather[0].Description,
		Temperature: result.Main.Temp,
	}
	if report.City == "" {
		report.City = city
	}
	o.log.Debug(ctx, "Weather fetched.", logging.Entry("city", city), logging.Entry("report", report))
	return report, nil
}
