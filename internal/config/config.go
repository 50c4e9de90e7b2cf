// Package config loads runner configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Runner holds all conformance-runner configuration values.
type Runner struct {
	// Source selects where location records come from.
	Source    string `validate:"oneof=jsonl stdin nmea mqtt"`
	InputPath string // jsonl/nmea file path; unused for stdin and mqtt

	// MQTT source settings.
	MQTTBroker   string `validate:"required_if=Source mqtt"`
	MQTTTopic    string `validate:"required_if=Source mqtt"`
	MQTTClientID string
	MQTTQoS      byte `validate:"lte=2"`

	// Contract options.
	CheckSpeed          bool
	CheckMoreAccuracies bool

	// PropertyFile is an optional key=value dump of the device's system
	// properties, used for the hardware-profile probe.
	PropertyFile string

	// Replay pacing for recorded streams.
	ReplayMode string  `validate:"oneof=asap timed"`
	ReplayRate float64 `validate:"gt=0"`

	MetricsAddr string

	// ReportPath is where the JSON report goes; "-" means stdout.
	ReportPath string
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is honoured when present.
func Load() (*Runner, error) {
	// Missing .env is the common case, not an error.
	_ = godotenv.Load()

	cfg := &Runner{
		Source:              getenvDefault("GNSS_SOURCE", "jsonl"),
		InputPath:           os.Getenv("GNSS_INPUT"),
		MQTTBroker:          os.Getenv("GNSS_MQTT_BROKER"),
		MQTTTopic:           os.Getenv("GNSS_MQTT_TOPIC"),
		MQTTClientID:        getenvDefault("GNSS_MQTT_CLIENT_ID", "gnss-conformance-runner"),
		CheckSpeed:          getenvBool("GNSS_CHECK_SPEED", false),
		CheckMoreAccuracies: getenvBool("GNSS_CHECK_MORE_ACCURACIES", false),
		PropertyFile:        os.Getenv("GNSS_PROPERTY_FILE"),
		ReplayMode:          getenvDefault("GNSS_REPLAY_MODE", "asap"),
		MetricsAddr:         getenvDefault("GNSS_METRICS_ADDR", ":9464"),
		ReportPath:          getenvDefault("GNSS_REPORT", "-"),
	}

	qos, err := getenvInt("GNSS_MQTT_QOS", 0)
	if err != nil {
		return nil, err
	}
	cfg.MQTTQoS = byte(qos)

	rate, err := getenvFloat("GNSS_REPLAY_RATE", 1.0)
	if err != nil {
		return nil, err
	}
	cfg.ReplayRate = rate

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return strings.EqualFold(v, "true") || v == "1"
}

func getenvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
