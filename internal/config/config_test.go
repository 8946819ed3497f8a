package config

import "testing"

func clearDBEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "DB_TYPE", "DB_HOST", "DB_PORT",
		"DB_DATABASE", "DB_USER", "DB_PASSWORD", "DB_CONNECTION_LIMIT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadRequiresDatabase(t *testing.T) {
	clearDBEnv(t)

	if _, err := Load(); err == nil {
		t.Fatal("Expected error when no database is configured")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DATABASE_URL", "sqlite://test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("Expected default port 3000, got %s", cfg.Port)
	}
	if cfg.DBType != "mysql" {
		t.Errorf("Expected default DB type mysql, got %s", cfg.DBType)
	}
	if cfg.DBConnectionLimit != 5 {
		t.Errorf("Expected default connection limit 5, got %d", cfg.DBConnectionLimit)
	}
}

func TestLoadDiscreteVariables(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_DATABASE", "assets")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_CONNECTION_LIMIT", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBType != "postgres" || cfg.DBDatabase != "assets" {
		t.Errorf("Expected discrete variables honored, got %+v", cfg)
	}
	if cfg.DBConnectionLimit != 12 {
		t.Errorf("Expected connection limit 12, got %d", cfg.DBConnectionLimit)
	}
}

func TestLoadRequiresUserForServerDatabases(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_DATABASE", "assets")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error when DB_USER is missing for a server database")
	}

	t.Setenv("DB_TYPE", "sqlite")
	if _, err := Load(); err != nil {
		t.Errorf("Expected sqlite to work without DB_USER, got %v", err)
	}
}

func TestLoadBadConnectionLimitFallsBack(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DATABASE_URL", "sqlite://test.db")
	t.Setenv("DB_CONNECTION_LIMIT", "lots")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBConnectionLimit != 5 {
		t.Errorf("Expected fallback connection limit 5, got %d", cfg.DBConnectionLimit)
	}
}
