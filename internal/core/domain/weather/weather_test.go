package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportString(t *testing.T) {
	r := Report{City: "Paris", Description: "light rain", Temperature: 12.345}
	assert.Equal(t, "The weather in Paris is light rain with a temperature of 12.3°C.", r.String())
}
