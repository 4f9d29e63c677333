package config

import (
	"log"
	"os"
	"time"
)

// String returns the env value for key, or def when unset or empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Duration parses key as a time.Duration ("90s", "1h"). Invalid or non-positive values fall back to def.
func Duration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("[config] invalid duration key=%s value=%q, using %s", key, raw, def)
		return def
	}
	return d
}
