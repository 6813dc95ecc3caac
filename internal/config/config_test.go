package config

import "testing"

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, name := range []string{"DEFAULT_LOCALE", "DATABASE_URL", "DATABASE_MAX_CONNS", "MIGRATIONS_PATH"} {
		t.Setenv(name, env[name])
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, nil)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultLocale != "en" {
		t.Errorf("DefaultLocale = %q, want en", cfg.DefaultLocale)
	}
	if cfg.MigrationsPath != "migrations" {
		t.Errorf("MigrationsPath = %q, want migrations", cfg.MigrationsPath)
	}
	if cfg.DatabaseURL == "" {
		t.Error("DatabaseURL default missing")
	}
	if cfg.DatabaseMaxConns != 0 {
		t.Errorf("DatabaseMaxConns = %d, want 0 (pgxpool default)", cfg.DatabaseMaxConns)
	}
}

func TestLoadExplicitValues(t *testing.T) {
	setEnv(t, map[string]string{
		"DEFAULT_LOCALE":     "pt",
		"DATABASE_URL":       "postgres://db.internal:5432/fitcoach?sslmode=require",
		"DATABASE_MAX_CONNS": "8",
		"MIGRATIONS_PATH":    "db/migrations",
	})
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultLocale != "pt" || cfg.MigrationsPath != "db/migrations" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.DatabaseMaxConns != 8 {
		t.Errorf("DatabaseMaxConns = %d, want 8", cfg.DatabaseMaxConns)
	}
}

func TestLoadRejectsBadMaxConns(t *testing.T) {
	for _, raw := range []string{"zero", "0", "-3"} {
		setEnv(t, map[string]string{"DATABASE_MAX_CONNS": raw})
		if _, err := Load(); err == nil {
			t.Errorf("Load accepted DATABASE_MAX_CONNS=%q", raw)
		}
	}
}

func TestLoadRejectsBadLocale(t *testing.T) {
	setEnv(t, map[string]string{"DEFAULT_LOCALE": "not a locale"})
	if _, err := Load(); err == nil {
		t.Fatal("Load accepted an unparseable DEFAULT_LOCALE")
	}
}

func TestLoadRejectsBadDatabaseURL(t *testing.T) {
	setEnv(t, map[string]string{"DATABASE_URL": "db.internal/fitcoach"})
	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a DATABASE_URL with no scheme")
	}
}
