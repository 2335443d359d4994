package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	Security struct {
		// Secret and algorithm are fixed for the process lifetime.
		JWTSecret string        `koanf:"jwt_secret"`
		Algorithm string        `koanf:"algorithm"`
		TTL       time.Duration `koanf:"ttl"`
	} `koanf:"security"`

	Store struct {
		// memory (default) | redis
		Backend string `koanf:"backend"`
		Redis   struct {
			Addr     string `koanf:"addr"`
			Password string `koanf:"password"`
		} `koanf:"redis"`
	} `koanf:"store"`

	Rabbit struct {
		URL string `koanf:"url"` // empty disables the publisher
	} `koanf:"rabbitmq"`

	Kafka struct {
		Brokers []string `koanf:"brokers"` // empty disables the consumer
		Topic   string   `koanf:"topic"`
		GroupID string   `koanf:"group_id"`
	} `koanf:"kafka"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	// 1) base
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// 2) env override (dev/staging/prod). Optional: allow missing for local runs.
	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	// 3) environment variables override (prefix GSHOP_, nested with __)
	// e.g. GSHOP_SECURITY__JWT_SECRET, GSHOP_STORE__REDIS__ADDR
	if err := k.Load(env.Provider("GSHOP_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "GSHOP_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("security.jwt_secret required")
	}
	switch c.Store.Backend {
	case "", "memory":
	case "redis":
		if c.Store.Redis.Addr == "" {
			return fmt.Errorf("store.redis.addr required for redis backend")
		}
	default:
		return fmt.Errorf("unknown store.backend %q", c.Store.Backend)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Security.Algorithm == "" {
		c.Security.Algorithm = "HS256"
	}
	if c.Security.TTL <= 0 {
		c.Security.TTL = 30 * time.Minute
	}
	if c.Store.Backend == "" {
		c.Store.Backend = "memory"
	}
	if c.App.LogFile == "" {
		c.App.LogFile = "./logs/app.log"
	}
}
