package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFrom(t *testing.T) {
	t.Run("aplica defaults quando o arquivo não existe", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "ausente.env"))
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if cfg.JWT.Issuer != "auth-api" {
			t.Errorf("esperava issuer 'auth-api', obteve '%s'", cfg.JWT.Issuer)
		}
		if cfg.JWT.AccessExpiry != 2*time.Hour {
			t.Errorf("esperava expiração de 2h, obteve %v", cfg.JWT.AccessExpiry)
		}
		if cfg.Storage.Driver != StorageDriverPostgres {
			t.Errorf("esperava driver postgres, obteve '%s'", cfg.Storage.Driver)
		}
		if cfg.CORS.AllowedOrigins != "http://localhost:3000" {
			t.Errorf("origem CORS inesperada: '%s'", cfg.CORS.AllowedOrigins)
		}
		if !cfg.Server.Swagger {
			t.Error("esperava swagger habilitado por padrão")
		}
	})

	t.Run("variáveis de ambiente sobrescrevem defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("STORAGE_DRIVER", "memory")
		t.Setenv("DB_PORT", "6543")
		t.Setenv("SWAGGER_ENABLED", "false")

		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "ausente.env"))
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if cfg.Storage.Driver != StorageDriverMemory {
			t.Errorf("esperava driver memory, obteve '%s'", cfg.Storage.Driver)
		}
		if cfg.Database.Port != 6543 {
			t.Errorf("esperava porta 6543, obteve %d", cfg.Database.Port)
		}
		if cfg.Server.Swagger {
			t.Error("esperava swagger desabilitado")
		}
	})

	t.Run("lê valores do arquivo .env", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		content := "JWT_SECRET=from-file\nLOG_LEVEL=debug\n"
		if err := os.WriteFile(envFile, []byte(content), 0644); err != nil { //nolint:gosec
			t.Fatalf("failed to create .env: %v", err)
		}
		// godotenv não sobrescreve variáveis existentes; t.Setenv restaura o estado ao final
		t.Setenv("JWT_SECRET", "")
		os.Unsetenv("JWT_SECRET")
		t.Setenv("LOG_LEVEL", "")
		os.Unsetenv("LOG_LEVEL")

		cfg, err := LoadFrom(envFile)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if cfg.JWT.Secret != "from-file" || cfg.Logging.Level != "debug" {
			t.Errorf("valores inesperados: secret=%s level=%s", cfg.JWT.Secret, cfg.Logging.Level)
		}
	})

	t.Run("erro sem JWT_SECRET", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := LoadFrom(filepath.Join(t.TempDir(), "ausente.env"))
		if !errors.Is(err, ErrMissingJWTSecret) {
			t.Errorf("esperava ErrMissingJWTSecret, obteve %v", err)
		}
	})

	t.Run("erro com driver inválido", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("STORAGE_DRIVER", "mongo")

		if _, err := LoadFrom(filepath.Join(t.TempDir(), "ausente.env")); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})
}
