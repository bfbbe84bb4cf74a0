package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APISPORTS_KEY", "test-key")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	t.Setenv("APISPORTS_KEY", "test-key")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_APIKeyRequired(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APISPORTS_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APISPORTS_KEY is missing")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_BetterStackRequiresEndpointWhenEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when BETTERSTACK_ENABLED=true without BETTERSTACK_ENDPOINT")
	}
}

func TestLoad_FetchDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APISPORTS_BASE_URL", "")
	t.Setenv("APISPORTS_TIMEOUT", "")
	t.Setenv("DEFAULT_COUNTRY", "")
	t.Setenv("DEFAULT_SEASON", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.APISportsBaseURL != "https://v3.football.api-sports.io" {
		t.Fatalf("unexpected base url: %q", cfg.APISportsBaseURL)
	}
	if cfg.APISportsTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.APISportsTimeout)
	}
	if cfg.DefaultCountry != "england" {
		t.Fatalf("unexpected default country: %q", cfg.DefaultCountry)
	}
	if cfg.DefaultSeason != 2023 {
		t.Fatalf("unexpected default season: %d", cfg.DefaultSeason)
	}
}

func TestLoad_RetryConfigParsing(t *testing.T) {
	setRequiredEnv(t)

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("RETRY_MAX_ATTEMPTS", "")
		t.Setenv("RETRY_INITIAL_DELAY", "")
		t.Setenv("RETRY_MULTIPLIER", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.RetryMaxAttempts != 3 {
			t.Fatalf("unexpected retry attempts: %d", cfg.RetryMaxAttempts)
		}
		if cfg.RetryInitialDelay != 2*time.Second {
			t.Fatalf("unexpected retry delay: %s", cfg.RetryInitialDelay)
		}
		if cfg.RetryMultiplier != 2 {
			t.Fatalf("unexpected retry multiplier: %v", cfg.RetryMultiplier)
		}
	})

	t.Run("invalid attempts", func(t *testing.T) {
		t.Setenv("RETRY_MAX_ATTEMPTS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for RETRY_MAX_ATTEMPTS=0")
		}
	})

	t.Run("invalid multiplier", func(t *testing.T) {
		t.Setenv("RETRY_MAX_ATTEMPTS", "")
		t.Setenv("RETRY_MULTIPLIER", "0.5")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for RETRY_MULTIPLIER<1")
		}
	})
}

func TestLoad_BatchConfigParsing(t *testing.T) {
	setRequiredEnv(t)

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("STORE_BATCH_SIZE", "")
		t.Setenv("STORE_BATCH_WORKERS", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StoreBatchSize != 1000 {
			t.Fatalf("unexpected batch size: %d", cfg.StoreBatchSize)
		}
		if cfg.StoreBatchWorkers != 4 {
			t.Fatalf("unexpected batch workers: %d", cfg.StoreBatchWorkers)
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		t.Setenv("STORE_BATCH_SIZE", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for STORE_BATCH_SIZE=0")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_SERVICE_NAME", "footdata-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "footdata-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	setRequiredEnv(t)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
	})
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	setRequiredEnv(t)

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}
