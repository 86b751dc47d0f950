package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFile = "data/config.yaml"
	envFile     = ".env"
)

type config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	Identity  IdentityConfig  `yaml:"identity"`
	Google    GoogleConfig    `yaml:"google"`
	App       AppConfig       `yaml:"app"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

// ValidationError lists every required key that is missing or empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
}

type Service struct {
	config config
}

// New reads the YAML file at path. ${VAR} references are expanded from the
// environment, which is first populated from .env when one exists.
func New(path string) (*Service, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "loading .env")
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{}
	expanded := os.ExpandEnv(string(rawYAML))
	if err := yaml.Unmarshal([]byte(expanded), &s.config); err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	s.config.App.setDefaults()
	s.config.Identity.setDefaults()
	return s, nil
}

type requirement struct {
	key   string
	value string
}

// Validate checks the keys the bot cannot start without.
func (s *Service) Validate() error {
	return s.validate(false)
}

// ValidateLocal is Validate for a bot running on the in-memory store,
// which needs neither Postgres nor Kafka.
func (s *Service) ValidateLocal() error {
	return s.validate(true)
}

func (s *Service) validate(local bool) error {
	c := &s.config
	required := []requirement{
		{"telegram.token", c.Telegram.APIToken},
		{"identity.api-key", c.Identity.Key},
		{"identity.auth-domain", c.Identity.Domain},
		{"identity.project-id", c.Identity.Project},
		{"google.client-id", c.Google.ID},
		{"google.client-secret", c.Google.Secret},
		{"google.redirect-url", c.Google.Redirect},
	}
	if !local {
		required = append(required,
			requirement{"postgres.host", c.Postgres.Hostname},
			requirement{"postgres.db", c.Postgres.Db},
			requirement{"postgres.username", c.Postgres.User},
			requirement{"kafka.changes-topic", c.Kafka.Topic},
			requirement{"kafka.consumer-group", c.Kafka.Consumer},
		)
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.key)
		}
	}
	if !local && !filled(c.Kafka.BrokerList) {
		missing = append(missing, "kafka.brokers")
	}
	if !filled(c.Memcached.Servers) {
		missing = append(missing, "memcached.hosts")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// filled reports whether list is non-empty and has no blank entries. An
// entry referencing an unset variable expands to "".
func filled(list []string) bool {
	if len(list) == 0 {
		return false
	}
	for _, v := range list {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Identity() *IdentityConfig {
	return &s.config.Identity
}

func (s *Service) Google() *GoogleConfig {
	return &s.config.Google
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
