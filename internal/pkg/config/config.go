package config

import (
	"io"
	"time"
)

// Config defines the methods the application uses to retrieve configuration
// values. Implementations handle retrieval and type conversion, returning
// zero values when a key is absent or unconvertible.
type Config interface {
	io.Closer

	// GetBool retrieves the configuration value associated with the given key as a bool.
	GetBool(key string) bool

	// GetInt retrieves the configuration value associated with the given key as an int.
	GetInt(key string) int

	// GetFloat64 retrieves the configuration value associated with the given key as a float64.
	GetFloat64(key string) float64

	// GetString retrieves the configuration value associated with the given key as a string.
	GetString(key string) string

	// GetSecond retrieves the configuration value associated with the given key as seconds.
	GetSecond(key string) time.Duration

	// GetMinute retrieves the configuration value associated with the given key as minutes.
	GetMinute(key string) time.Duration

	// GetArray retrieves the configuration value associated with the given key
	// as a slice of strings. Configuration value is stored with format
	// <element1>,<element2>,...
	GetArray(key string) []string
}
