package main

import (
	"testing"

	"pirelay/internal/payments"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PI_API_KEY", "")
	t.Setenv("PI_API_URL", "")
	t.Setenv("EXTERNAL_URL", "")

	cfg := loadConfig()

	if cfg.addr != ":3000" {
		t.Errorf("addr = %q", cfg.addr)
	}
	if cfg.pi.baseURL != payments.DefaultPiAPIURL {
		t.Errorf("base url = %q", cfg.pi.baseURL)
	}
	if cfg.pi.apiKey != "" {
		t.Errorf("api key should be empty")
	}
	if cfg.apiURL != "localhost:3000" {
		t.Errorf("api url = %q", cfg.apiURL)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("PI_API_KEY", "k")
	t.Setenv("PI_API_URL", "https://sandbox.example")

	cfg := loadConfig()

	if cfg.addr != ":8081" || cfg.pi.apiKey != "k" || cfg.pi.baseURL != "https://sandbox.example" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
