package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetters(t *testing.T) {
	env := map[string]string{
		"NAME":    "  blog ",
		"BLANK":   "   ",
		"PORT":    "9000",
		"BAD_INT": "nine",
		"FLAG":    "TRUE",
		"LIST":    "a, b,,c ",
		"SECS":    "30",
	}

	assert.Equal(t, "blog", GetString(env, "NAME", "x"))
	assert.Equal(t, "x", GetString(env, "BLANK", "x"))
	assert.Equal(t, "x", GetString(nil, "NAME", "x"))
	assert.Equal(t, 9000, GetInt(env, "PORT", 1))
	assert.Equal(t, 1, GetInt(env, "BAD_INT", 1))
	assert.True(t, GetBool(env, "FLAG", false))
	assert.False(t, GetBool(env, "MISSING", false))
	assert.Equal(t, []string{"a", "b", "c"}, GetList(env, "LIST", nil))
	assert.Nil(t, GetList(env, "MISSING", nil))
	assert.Equal(t, 30*time.Second, GetSeconds(env, "SECS", time.Second))
	assert.Equal(t, time.Second, GetSeconds(env, "MISSING", time.Second))
}

func TestLoad_Defaults(t *testing.T) {
	s := Load(map[string]string{})

	assert.Equal(t, "8080", s.Server.Port)
	assert.Equal(t, "postgres", s.Database.Type)
	assert.True(t, s.Database.AutoMigrate)
	assert.Equal(t, "json", s.Log.Format)
	assert.Equal(t, "", s.Media.Store)
	assert.Error(t, s.Validate(), "postgres without DATABASE_URL")
}

func TestSettings_ValidateSQLite(t *testing.T) {
	s := Load(map[string]string{"DB_TYPE": "SQLite", "SQLITE_PATH": "dev.db"})

	require.NoError(t, s.Validate())
	assert.Equal(t, "dev.db", s.Database.DSN())
}

func TestSettings_ValidateCollectsProblems(t *testing.T) {
	s := Load(map[string]string{
		"DB_TYPE":        "mysql",
		"MEDIA_STORE":    "s3",
		"ADMIN_USERNAME": "owner",
	})

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_TYPE")
	assert.Contains(t, err.Error(), "S3_BUCKET")
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD")
}

func TestDatabaseSettings_SupabaseDSN(t *testing.T) {
	s := Load(map[string]string{
		"DB_TYPE":              "supa",
		"SUPABASE_DB_HOST":     "db.example.co",
		"SUPABASE_DB_USER":     "postgres",
		"SUPABASE_DB_PASSWORD": "pw",
		"SUPABASE_DB_NAME":     "postgres",
	})

	require.NoError(t, s.Validate())
	assert.Equal(t, "host=db.example.co user=postgres password=pw dbname=postgres port=5432 sslmode=require", s.Database.DSN())
}

func TestMailSettings_Enabled(t *testing.T) {
	assert.False(t, Load(nil).Mail.Enabled())

	s := Load(map[string]string{
		"RESEND_API_KEY":       "re_key",
		"RESEND_FROM_EMAIL":    "Travel <hello@example.com>",
		"CONTACT_NOTIFY_EMAIL": "owner@example.com, editor@example.com",
	})
	assert.True(t, s.Mail.Enabled())
	assert.Equal(t, []string{"owner@example.com", "editor@example.com"}, s.Mail.NotifyTo)
}
