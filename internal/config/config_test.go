package config

import (
	"testing"
	"time"
)

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := ReadConfig()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Host != "localhost" {
		t.Errorf("unexpected host: %s", cfg.Host)
	}
	if cfg.Url.String() != "https://localhost" {
		t.Errorf("unexpected url: %s", cfg.Url)
	}
	if cfg.RsaKeySize != MinRsaKeySize {
		t.Errorf("unexpected key size: %d", cfg.RsaKeySize)
	}
	if cfg.DeliveryTimeout != 15*time.Second {
		t.Errorf("unexpected delivery timeout: %s", cfg.DeliveryTimeout)
	}
	if cfg.Port != 8080 {
		t.Errorf("unexpected port: %d", cfg.Port)
	}
}

func TestReadConfigEnvOverride(t *testing.T) {
	t.Setenv("MICROBLOG_HOST", "blog.example")
	t.Setenv("MICROBLOG_HTTPS", "false")
	t.Setenv("MICROBLOG_QUEUE_WORKERS", "8")

	cfg, err := ReadConfig()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Host != "blog.example" {
		t.Errorf("unexpected host: %s", cfg.Host)
	}
	if cfg.Url.String() != "http://blog.example" {
		t.Errorf("unexpected url: %s", cfg.Url)
	}
	if cfg.QueueWorkers != 8 {
		t.Errorf("unexpected worker count: %d", cfg.QueueWorkers)
	}
}

func TestReadConfigRejectsWeakKeys(t *testing.T) {
	t.Setenv("MICROBLOG_RSA_KEY_SIZE", "1024")

	if _, err := ReadConfig(); err == nil {
		t.Error("expected key sizes below the minimum to be rejected")
	}
}
