package reportweather

import (
	"context"
	"strings"

	c "assistant/internal/core/domain/common"
	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/weather"
	"assistant/internal/core/services"
)

type Input struct {
	City c.Optional[string]
}

// GetRateLimitKey shares one quota between all cities.
func (i Input) GetRateLimitKey() string {
	return "weather"
}

// Result names the city that was looked up, also when the lookup failed.
type Result struct {
	City   string
	Report weather.Report
}

type service struct {
	log         logging.Logger
	reporter    weather.Reporter
	defaultCity string
}

// New creates the weather lookup. defaultCity is used when a command names no
// city and may be empty.
func New(log logging.Logger, reporter weather.Reporter, defaultCity string) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reporter == nil {
		panic(e.NewNilArgumentError("reporter"))
	}
	return &service{
		log:         log,
		reporter:    reporter,
		defaultCity: strings.TrimSpace(defaultCity),
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	city := strings.TrimSpace(input.City.OrElse(s.defaultCity))
	if city == "" {
		city = s.defaultCity
	}
	if city == "" {
		s.log.Info(ctx, "Weather requested without a city.")
		return result, weather.ErrCityNotSpecified
	}

	result.City = city
	report, err := s.reporter.Report(ctx, city)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("city", city))
		return result, err
	}

	s.log.Info(ctx, "Weather reported.", logging.Entry("city", city), logging.Entry("report", report))
	result.Report = report
	return result, nil
}
