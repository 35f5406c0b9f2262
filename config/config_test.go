package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("ORDER_TOPIC", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("SMTP_PORT", "")

	cfg := Load("8081")

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 465, cfg.SMTPPort)
	assert.Equal(t, "orders", cfg.OrderTopic)
}

func TestRequireJWTSecret(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expected      string
		expectedError error
	}{
		{
			name:          "unset",
			env:           "",
			expectedError: ErrMissingJWTSecret,
		},
		{
			name:     "set",
			env:      "s3cret",
			expected: "s3cret",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", testCase.env)

			secret, err := Load("8081").RequireJWTSecret()

			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Empty(t, secret)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expected, secret)
		})
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_HOST", "db")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_HOST", "mail.example.com")

	cfg := Load("8081")

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "mail.example.com", cfg.SMTPHost)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("SMTP_PORT", "abc")

	cfg := Load("8081")

	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 465, cfg.SMTPPort)
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{DBHost: "h", DBPort: "1", DBUser: "u", DBPassword: "p", DBName: "n"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=n sslmode=disable", cfg.PostgresDSN())
}
