package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullConfig = `
telegram:
  token: ${TEST_TG_TOKEN}
identity:
  api-key: key
  auth-domain: example.firebaseapp.com
  project-id: example
google:
  client-id: cid
  client-secret: secret
  redirect-url: http://localhost
postgres:
  host: localhost:5432
  db: expenses
  username: postgres
kafka:
  brokers: [localhost:9092]
  changes-topic: changes
  consumer-group: tracker
memcached:
  hosts: [localhost:11211]
`

func Test_OnFullConfig_ShouldExpandEnvAndValidate(t *testing.T) {
	t.Setenv("TEST_TG_TOKEN", "bot-token")

	s, err := Parse([]byte(fullConfig))

	require.NoError(t, err)
	require.NoError(t, s.Validate())
	assert.Equal(t, "bot-token", s.Telegram().Token())
	assert.Equal(t, []string{"localhost:9092"}, s.Kafka().Brokers())
	assert.Equal(t, "changes", s.Kafka().ChangesTopic())
	assert.Equal(t, "disable", s.Postgres().SSLMode())
}

func Test_OnMissingKeys_ShouldListThemAll(t *testing.T) {
	t.Setenv("TEST_TG_TOKEN", "")

	s, err := Parse([]byte(`
identity:
  api-key: key
kafka:
  changes-topic: changes
`))
	require.NoError(t, err)

	err = s.Validate()

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"telegram.token",
		"identity.auth-domain",
		"identity.project-id",
		"google.client-id",
		"google.client-secret",
		"google.redirect-url",
		"postgres.host",
		"postgres.db",
		"postgres.username",
		"kafka.consumer-group",
		"kafka.brokers",
		"memcached.hosts",
	}, validationErr.Missing)
	assert.Contains(t, err.Error(), "telegram.token")
}

func Test_OnUnsetEnvReference_ShouldCountAsMissing(t *testing.T) {
	s, err := Parse([]byte(fullConfig))
	require.NoError(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, s.Validate(), &validationErr)
	assert.Equal(t, []string{"telegram.token"}, validationErr.Missing)
}

func Test_OnUnsetListEntries_ShouldCountAsMissing(t *testing.T) {
	t.Setenv("TEST_TG_TOKEN", "bot-token")
	t.Setenv("TEST_KAFKA_BROKER", "")
	t.Setenv("TEST_MEMCACHED_HOST", "")
	raw := strings.NewReplacer(
		"brokers: [localhost:9092]", "brokers:\n    - ${TEST_KAFKA_BROKER}",
		"hosts: [localhost:11211]", "hosts:\n    - ${TEST_MEMCACHED_HOST}",
	).Replace(fullConfig)

	s, err := Parse([]byte(raw))
	require.NoError(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, s.Validate(), &validationErr)
	assert.Equal(t, []string{"kafka.brokers", "memcached.hosts"}, validationErr.Missing)
}

func Test_OnLocalMode_ShouldSkipPostgresAndKafka(t *testing.T) {
	t.Setenv("TEST_TG_TOKEN", "bot-token")

	s, err := Parse([]byte(`
telegram:
  token: ${TEST_TG_TOKEN}
identity:
  api-key: key
  auth-domain: example.firebaseapp.com
  project-id: example
google:
  client-id: cid
  client-secret: secret
  redirect-url: http://localhost
memcached:
  hosts: [localhost:11211]
`))
	require.NoError(t, err)

	assert.NoError(t, s.ValidateLocal())

	var validationErr *ValidationError
	require.ErrorAs(t, s.Validate(), &validationErr)
	assert.Equal(t, []string{
		"postgres.host",
		"postgres.db",
		"postgres.username",
		"kafka.changes-topic",
		"kafka.consumer-group",
		"kafka.brokers",
	}, validationErr.Missing)
}

func Test_OnLocalModeWithoutMemcached_ShouldFail(t *testing.T) {
	t.Setenv("TEST_TG_TOKEN", "bot-token")
	raw := strings.Replace(fullConfig, "hosts: [localhost:11211]", "hosts: []", 1)

	s, err := Parse([]byte(raw))
	require.NoError(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, s.ValidateLocal(), &validationErr)
	assert.Equal(t, []string{"memcached.hosts"}, validationErr.Missing)
}

func Test_OnEmptySections_ShouldApplyDefaults(t *testing.T) {
	s, err := Parse([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, "MKD", s.App().DefaultCurrency())
	assert.Equal(t, defaultAdminAddr, s.App().AdminAddr())
	assert.Equal(t, defaultGRPCAddr, s.App().GRPCAddr())
	assert.Equal(t, defaultIdentityEndpoint, s.Identity().Endpoint())
	assert.Equal(t, "expense-tracker", s.Tracing().ServiceName())
}

func Test_OnNew_ShouldReadFileAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TEST_DOTENV_TOKEN=from-dotenv\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("telegram:\n  token: ${TEST_DOTENV_TOKEN}\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("TEST_DOTENV_TOKEN") })

	s, err := New(filepath.Join(dir, "config.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", s.Telegram().Token())
}

func Test_OnMissingFile_ShouldFail(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}
