package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

const MinRsaKeySize = 3072

type Configuration struct {
	// Name of the instance, shown on the HTML pages.
	Name string
	// Https defines the scheme used in every generated id. Remote servers compare ids
	// byte for byte, so it must match how the instance is actually reachable.
	Https bool
	// Host is the name of the host running the application, without scheme or port.
	Host string
	// Url is the instance's base url, derived from Https and Host.
	Url *url.URL
	// DbUrl is the path to the database file.
	DbUrl string
	// QueueDbUrl is the path to the database file backing the task queue. It is kept
	// separate from the main database so queue polling never contends with request
	// transactions.
	QueueDbUrl string
	// MigrationsFolder holds the SQL migration files applied at setup time.
	MigrationsFolder string
	// RsaKeySize specifies the size of the RSA keys generated for local users. Values
	// below MinRsaKeySize are rejected.
	RsaKeySize int
	// DeliveryTimeout bounds a single outbound delivery, so a hung remote inbox
	// cannot occupy a queue worker indefinitely.
	DeliveryTimeout time.Duration
	// QueueWorkers is the number of concurrent task queue workers.
	QueueWorkers int
	// SessionKey is the secret used to authenticate session cookies.
	SessionKey string
	Port       uint16
	// Debug, if true, will make the application log all HTTP requests and other events.
	Debug bool
}

// ReadConfig loads the configuration from microblog.toml in the working directory, if
// present, and from MICROBLOG_* environment variables, which take precedence. It is
// called once at startup; the returned struct is never mutated afterwards.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("microblog")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("microblog")
	v.AutomaticEnv()

	v.SetDefault("name", "microblog")
	v.SetDefault("https", true)
	v.SetDefault("host", "localhost")
	v.SetDefault("db_url", "microblog.db")
	v.SetDefault("queue_db_url", "queue.db")
	v.SetDefault("migrations_folder", "migrations")
	v.SetDefault("rsa_key_size", MinRsaKeySize)
	v.SetDefault("delivery_timeout", 15*time.Second)
	v.SetDefault("queue_workers", 4)
	v.SetDefault("port", 8080)
	v.SetDefault("debug", false)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Configuration{}, err
		}
	}

	cfg := Configuration{
		Name:             v.GetString("name"),
		Https:            v.GetBool("https"),
		Host:             v.GetString("host"),
		DbUrl:            v.GetString("db_url"),
		QueueDbUrl:       v.GetString("queue_db_url"),
		MigrationsFolder: v.GetString("migrations_folder"),
		RsaKeySize:       v.GetInt("rsa_key_size"),
		DeliveryTimeout:  v.GetDuration("delivery_timeout"),
		QueueWorkers:     v.GetInt("queue_workers"),
		SessionKey:       v.GetString("session_key"),
		Port:             uint16(v.GetUint32("port")),
		Debug:            v.GetBool("debug"),
	}

	if cfg.RsaKeySize < MinRsaKeySize {
		return Configuration{}, fmt.Errorf("rsa_key_size %d below minimum %d", cfg.RsaKeySize, MinRsaKeySize)
	}

	scheme := "https"
	if !cfg.Https {
		scheme = "http"
	}
	u, err := url.Parse(scheme + "://" + cfg.Host)
	if err != nil {
		return Configuration{}, fmt.Errorf("invalid host %q: %w", cfg.Host, err)
	}
	cfg.Url = u

	return cfg, nil
}
