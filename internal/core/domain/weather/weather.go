package weather

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrCityNotSpecified = errors.New("city is not specified")
	ErrCityNotFound     = errors.New("city not found")
)

type Report struct {
	City        string
	Description string
	Temperature float64
}

func (r Report) String() string {
	return fmt.Sprintf("The weather in %s is %s with a temperature of %.1f°C.", r.City, r.Description, r.Temperature)
}

type Reporter interface {
	Report(ctx context.Context, city string) (Report, error)
}
