package cliparse

import "testing"

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-p", "9000",
		"-d", "postgres://localhost/pollpro",
		"-jwt-secret", "test-secret",
	})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("Expected default database type postgres, got %s", cfg.DatabaseType)
	}
	if cfg.TokenTTLHours != 24 {
		t.Errorf("Expected default token TTL 24, got %d", cfg.TokenTTLHours)
	}
}

func TestParseFlagsMissingDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := ParseFlags([]string{"-jwt-secret", "s"})
	if err == nil {
		t.Error("Expected error for missing database URL")
	}
}

func TestParseFlagsMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := ParseFlags([]string{"-d", "postgres://localhost/pollpro"})
	if err == nil {
		t.Error("Expected error for missing JWT secret")
	}
}

func TestParseFlagsBadDatabaseType(t *testing.T) {
	_, err := ParseFlags([]string{
		"-d", "postgres://localhost/pollpro",
		"-jwt-secret", "s",
		"-t", "oracle",
	})
	if err == nil {
		t.Error("Expected error for unsupported database type")
	}
}
