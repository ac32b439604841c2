package config

import (
	"os"
	"strconv"
)

// Config holds the CLI defaults, loaded from environment variables.
type Config struct {
	// Reference click recordings, one per division
	ClickBar  string
	Click4th  string
	Click8th  string
	Click16th string
	Click32nd string

	MinSilenceSeconds float64 // silence that ends a click
	BPMTolerance      float64 // min BPM change for a new tempo event
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		ClickBar:  envStr("CLICKTRACK_CLICK_BAR", "clicks/bar.wav"),
		Click4th:  envStr("CLICKTRACK_CLICK_4TH", "clicks/quarter.wav"),
		Click8th:  envStr("CLICKTRACK_CLICK_8TH", "clicks/eigth.wav"),
		Click16th: envStr("CLICKTRACK_CLICK_16TH", "clicks/sixteenth.wav"),
		Click32nd: envStr("CLICKTRACK_CLICK_32ND", "clicks/thirtysecond.wav"),

		MinSilenceSeconds: envFloat("CLICKTRACK_MIN_SILENCE", 0.001),
		BPMTolerance:      envFloat("CLICKTRACK_BPM_TOLERANCE", 0.05),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
