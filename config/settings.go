package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Settings is the typed view of the environment used by main.
type Settings struct {
	Server   ServerSettings
	Database DatabaseSettings
	Log      LogSettings
	Site     SiteSettings
	Media    MediaSettings
	Admin    AdminSettings
	Mail     MailSettings
}

type ServerSettings struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	AcceptedOrigins []string
}

type DatabaseSettings struct {
	Type         string // postgres, supa or sqlite
	URL          string
	SupabaseHost string
	SupabaseUser string
	SupabasePass string
	SupabaseName string
	SupabasePort string
	SQLitePath   string
	ReplicaURLs  []string
	MaxOpenConns int
	MaxIdleConns int
	AutoMigrate  bool
	SchemaReport bool
}

type LogSettings struct {
	Level  string
	Format string // json or console
}

type SiteSettings struct {
	URL         string
	Name        string
	Description string
}

type MediaSettings struct {
	Store     string // s3, local or empty for none
	LocalDir  string
	PublicURL string
	S3Bucket  string
	S3Region  string
	S3Prefix  string
}

type AdminSettings struct {
	Username string
	Password string
}

// MailSettings enables contact form notifications when all three are set.
type MailSettings struct {
	ResendAPIKey string
	From         string
	NotifyTo     []string
}

func (m MailSettings) Enabled() bool {
	return m.ResendAPIKey != "" && m.From != "" && len(m.NotifyTo) > 0
}

// Load builds Settings from a map produced by New, applying defaults.
func Load(env map[string]string) Settings {
	return Settings{
		Server: ServerSettings{
			Port:            GetString(env, "PORT", "8080"),
			ReadTimeout:     GetSeconds(env, "READ_TIMEOUT_SECONDS", 15*time.Second),
			WriteTimeout:    GetSeconds(env, "WRITE_TIMEOUT_SECONDS", 15*time.Second),
			IdleTimeout:     GetSeconds(env, "IDLE_TIMEOUT_SECONDS", 60*time.Second),
			AcceptedOrigins: GetList(env, "ACCEPTED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		},
		Database: DatabaseSettings{
			Type:         strings.ToLower(GetString(env, "DB_TYPE", "postgres")),
			URL:          GetString(env, "DATABASE_URL", ""),
			SupabaseHost: GetString(env, "SUPABASE_DB_HOST", ""),
			SupabaseUser: GetString(env, "SUPABASE_DB_USER", ""),
			SupabasePass: GetString(env, "SUPABASE_DB_PASSWORD", ""),
			SupabaseName: GetString(env, "SUPABASE_DB_NAME", ""),
			SupabasePort: GetString(env, "SUPABASE_DB_PORT", "5432"),
			SQLitePath:   GetString(env, "SQLITE_PATH", "travel-blog.db"),
			ReplicaURLs:  GetList(env, "DATABASE_REPLICA_URLS", nil),
			MaxOpenConns: GetInt(env, "DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: GetInt(env, "DB_MAX_IDLE_CONNS", 5),
			AutoMigrate:  GetBool(env, "AUTO_MIGRATE", true),
			SchemaReport: GetBool(env, "SCHEMA_REPORT", false),
		},
		Log: LogSettings{
			Level:  strings.ToLower(GetString(env, "LOG_LEVEL", "info")),
			Format: strings.ToLower(GetString(env, "LOG_FORMAT", "json")),
		},
		Site: SiteSettings{
			URL:         strings.TrimRight(GetString(env, "SITE_URL", "http://localhost:3000"), "/"),
			Name:        GetString(env, "SITE_NAME", "Travel Diaries"),
			Description: GetString(env, "SITE_DESCRIPTION", "Stories, guides and photographs from the road"),
		},
		Media: MediaSettings{
			Store:     strings.ToLower(GetString(env, "MEDIA_STORE", "")),
			LocalDir:  GetString(env, "MEDIA_LOCAL_DIR", "uploads"),
			PublicURL: strings.TrimRight(GetString(env, "MEDIA_PUBLIC_URL", ""), "/"),
			S3Bucket:  GetString(env, "S3_BUCKET", ""),
			S3Region:  GetString(env, "S3_REGION", ""),
			S3Prefix:  GetString(env, "S3_PREFIX", "uploads/"),
		},
		Admin: AdminSettings{
			Username: GetString(env, "ADMIN_USERNAME", ""),
			Password: GetString(env, "ADMIN_PASSWORD", ""),
		},
		Mail: MailSettings{
			ResendAPIKey: GetString(env, "RESEND_API_KEY", ""),
			From:         GetString(env, "RESEND_FROM_EMAIL", ""),
			NotifyTo:     GetList(env, "CONTACT_NOTIFY_EMAIL", nil),
		},
	}
}

// DSN returns the connection string for the configured database type.
func (d DatabaseSettings) DSN() string {
	switch d.Type {
	case "supa":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			d.SupabaseHost, d.SupabaseUser, d.SupabasePass, d.SupabaseName, d.SupabasePort)
	case "sqlite":
		return d.SQLitePath
	default:
		return d.URL
	}
}

// Validate reports every problem at once.
func (s Settings) Validate() error {
	var problems []error

	switch s.Database.Type {
	case "postgres":
		if s.Database.URL == "" {
			problems = append(problems, errors.New("DATABASE_URL is required when DB_TYPE=postgres"))
		}
	case "supa":
		if s.Database.SupabaseHost == "" || s.Database.SupabaseUser == "" || s.Database.SupabaseName == "" {
			problems = append(problems, errors.New("SUPABASE_DB_HOST, SUPABASE_DB_USER and SUPABASE_DB_NAME are required when DB_TYPE=supa"))
		}
	case "sqlite":
		if s.Database.SQLitePath == "" {
			problems = append(problems, errors.New("SQLITE_PATH is required when DB_TYPE=sqlite"))
		}
	default:
		problems = append(problems, fmt.Errorf("unsupported DB_TYPE %q", s.Database.Type))
	}

	if _, err := url.Parse(s.Site.URL); err != nil {
		problems = append(problems, fmt.Errorf("SITE_URL: %w", err))
	}

	switch s.Media.Store {
	case "":
	case "s3":
		if s.Media.S3Bucket == "" {
			problems = append(problems, errors.New("S3_BUCKET is required when MEDIA_STORE=s3"))
		}
	case "local":
		if s.Media.LocalDir == "" || s.Media.PublicURL == "" {
			problems = append(problems, errors.New("MEDIA_LOCAL_DIR and MEDIA_PUBLIC_URL are required when MEDIA_STORE=local"))
		}
	default:
		problems = append(problems, fmt.Errorf("unsupported MEDIA_STORE %q", s.Media.Store))
	}

	if (s.Admin.Username == "") != (s.Admin.Password == "") {
		problems = append(problems, errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must be set together"))
	}

	return errors.Join(problems...)
}
