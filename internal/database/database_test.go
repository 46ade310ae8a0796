package database_test

import (
	"net/url"
	"testing"
	"time"

	"flight-ticket-stats/config"
	"flight-ticket-stats/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnString(t *testing.T) {
	cfg := config.LoadTestConfig().Database
	cfg.Password = "p@ss word"

	u, err := url.Parse(database.ConnString(&cfg))

	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "localhost:5433", u.Host)
	assert.Equal(t, "/test_db", u.Path)
	password, _ := u.User.Password()
	assert.Equal(t, "p@ss word", password)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
	assert.Equal(t, "UTC", u.Query().Get("timezone"))
}

func TestReportCacheOptions(t *testing.T) {
	cfg := config.LoadTestConfig().Redis

	opts := database.ReportCacheOptions(&cfg)

	assert.Equal(t, "localhost:6380", opts.Addr)
	assert.Equal(t, 1, opts.DB)
	assert.Equal(t, 500*time.Millisecond, opts.ReadTimeout)
}
