package config

import (
	"os"
	"reflect"
	"strings"
	"testing"
	"time"
)

// Ensure the ambient environment does not leak into defaults.
func TestMain(m *testing.M) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "DB_PATH", "LOG_LEVEL"} {
		os.Unsetenv(k)
	}
	os.Exit(m.Run())
}

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustLoad should panic on invalid config")
		}
	}()
	_ = MustLoad()
}

func TestMustLoad_DefaultsAreValid(t *testing.T) {
	cfg := MustLoad()
	if cfg.APIBasePath != "/api/v1" || cfg.Port != "8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Store.Driver != "sqlite" || cfg.Store.DBPath != "marketplace.db" {
		t.Fatalf("store defaults unexpected: %+v", cfg.Store)
	}
	if !cfg.Seed.Demo || cfg.Seed.File != "" {
		t.Fatalf("seed defaults unexpected: %+v", cfg.Seed)
	}
	if cfg.IdempotencyKeyMaxLen != 200 || cfg.OTEL.ServiceName != "go-marketplace" {
		t.Fatalf("misc defaults unexpected: %+v", cfg)
	}
}

func TestLoad_OverridesAndNormalization(t *testing.T) {
	env := map[string]string{
		"PORT":                "8088",
		"READ_TIMEOUT":        "2s",
		"READ_HEADER_TIMEOUT": "1s",
		"WRITE_TIMEOUT":       "3s",
		"IDLE_TIMEOUT":        "4s",
		"MAX_HEADER_BYTES":    "8192",
		"GIN_MODE":            "weird", // -> release

		"LOG_LEVEL":       "warning", // -> warn
		"LOG_PRETTY":      "yes",
		"SWAGGER_ENABLED": "on",
		"API_BASE_PATH":   "api/v1/", // -> /api/v1

		"STORE_DRIVER":   " Redis ",
		"REDIS_ADDR":     "cache:6379",
		"REDIS_PASSWORD": "pw",
		"REDIS_DB":       "2",
		"REDIS_PREFIX":   "mp:",
		"SEED_DEMO":      "off",
		"SEED_FILE":      "catalog.yaml",

		"RATE_RPS":   "x",    // unparsable -> default 5
		"RATE_BURST": "nope", // unparsable -> default 10

		"CORS_ALLOWED_ORIGINS": " https://a.com , , http://b ",
		"ENABLE_HSTS":          "TRUE",
		"HSTS_MAX_AGE":         "24h",

		"IDEMPOTENCY_KEY_MAX_LEN": "64",

		"OTEL_ENABLED":                "1",
		"OTEL_EXPORTER_OTLP_ENDPOINT": "otel:4317",
		"OTEL_EXPORTER_OTLP_INSECURE": "0",
		"OTEL_SERVICE_NAME":           "svc",
		"OTEL_TRACES_SAMPLER_ARG":     "0.75",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Port != "8088" || cfg.ReadTimeout != 2*time.Second || cfg.ReadHeaderTimeout != time.Second ||
		cfg.WriteTimeout != 3*time.Second || cfg.IdleTimeout != 4*time.Second ||
		cfg.MaxHeaderBytes != 8192 || cfg.GinMode != "release" {
		t.Fatalf("server fields unexpected: %+v", cfg)
	}
	if cfg.LogLevel != "warn" || !cfg.LogPretty || !cfg.SwaggerEnabled || cfg.APIBasePath != "/api/v1" {
		t.Fatalf("logging/docs unexpected: %+v", cfg)
	}

	wantStore := StoreConfig{
		Driver: "redis", DBPath: "marketplace.db",
		RedisAddr: "cache:6379", RedisPassword: "pw", RedisDB: 2, RedisPrefix: "mp:",
	}
	if cfg.Store != wantStore {
		t.Fatalf("store unexpected: %+v", cfg.Store)
	}
	if cfg.Seed != (SeedConfig{Demo: false, File: "catalog.yaml"}) {
		t.Fatalf("seed unexpected: %+v", cfg.Seed)
	}

	if cfg.RateRPS != 5.0 || cfg.RateBurst != 10 {
		t.Fatalf("rate limiting unexpected: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"https://a.com", "http://b"}) {
		t.Fatalf("cors origins unexpected: %#v", cfg.CORS.AllowedOrigins)
	}
	if !cfg.Security.EnableHSTS || cfg.Security.HSTSMaxAge != 24*time.Hour {
		t.Fatalf("security unexpected: %+v", cfg.Security)
	}
	if cfg.IdempotencyKeyMaxLen != 64 {
		t.Fatalf("idempotency key max len unexpected: %d", cfg.IdempotencyKeyMaxLen)
	}
	if !cfg.OTEL.Enabled || cfg.OTEL.Endpoint != "otel:4317" || cfg.OTEL.Insecure ||
		cfg.OTEL.ServiceName != "svc" || cfg.OTEL.SampleRatio != 0.75 {
		t.Fatalf("otel unexpected: %+v", cfg.OTEL)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"blank port", map[string]string{"PORT": "   "}, "PORT must not be empty"},
		{"zero timeout", map[string]string{"READ_TIMEOUT": "0s"}, "timeouts must be positive"},
		{"header bytes", map[string]string{"MAX_HEADER_BYTES": "0"}, "MAX_HEADER_BYTES"},
		{"blank sqlite path", map[string]string{"DB_PATH": "   "}, "DB_PATH must not be empty"},
		{"unknown driver", map[string]string{"STORE_DRIVER": "mongo"}, "STORE_DRIVER"},
		{"postgres without dsn", map[string]string{"STORE_DRIVER": "postgres"}, "DATABASE_URL"},
		{"redis without addr", map[string]string{"STORE_DRIVER": "redis", "REDIS_ADDR": " "}, "REDIS_ADDR"},
		{"negative redis db", map[string]string{"STORE_DRIVER": "redis", "REDIS_DB": "-1"}, "REDIS_DB"},
		{"negative rps", map[string]string{"RATE_RPS": "-1"}, "RATE_RPS"},
		{"zero burst", map[string]string{"RATE_BURST": "0"}, "RATE_BURST"},
		{"negative hsts", map[string]string{"HSTS_MAX_AGE": "-1s"}, "HSTS_MAX_AGE"},
		{"zero key len", map[string]string{"IDEMPOTENCY_KEY_MAX_LEN": "0"}, "IDEMPOTENCY_KEY_MAX_LEN"},
		{"sample ratio", map[string]string{"OTEL_TRACES_SAMPLER_ARG": "1.5"}, "OTEL_TRACES_SAMPLER_ARG"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoad_ReportsAllProblems(t *testing.T) {
	t.Setenv("RATE_BURST", "0")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "2")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"RATE_BURST", "DATABASE_URL", "OTEL_TRACES_SAMPLER_ARG"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("joined error misses %s: %v", want, err)
		}
	}
}

func TestLoad_MemoryAndNoneDriversNeedNothing(t *testing.T) {
	for _, d := range []string{"memory", "none"} {
		t.Setenv("STORE_DRIVER", d)
		t.Setenv("DB_PATH", " ")
		if _, err := Load(); err != nil {
			t.Fatalf("driver %s: unexpected error %v", d, err)
		}
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("H_EMPTY", "")
	t.Setenv("H_STR", "val")
	t.Setenv("H_FLOAT", "3.14")
	t.Setenv("H_INT", "42")
	t.Setenv("H_DUR", "150ms")
	t.Setenv("H_BAD", "zzz")

	if getenv("H_EMPTY", "d") != "d" || getenv("H_STR", "d") != "val" {
		t.Fatalf("getenv fallback/read broken")
	}
	if getfloat("H_FLOAT", 0) != 3.14 || getfloat("H_BAD", 1.5) != 1.5 {
		t.Fatalf("getfloat parse/fallback broken")
	}
	if getint("H_INT", 0) != 42 || getint("H_BAD", 7) != 7 {
		t.Fatalf("getint parse/fallback broken")
	}
	if getdur("H_DUR", time.Second) != 150*time.Millisecond || getdur("H_BAD", 2*time.Second) != 2*time.Second {
		t.Fatalf("getdur parse/fallback broken")
	}
}

func TestGetbool(t *testing.T) {
	cases := []struct {
		in   string
		def  bool
		want bool
	}{
		{"1", false, true},
		{" yes ", false, true},
		{"On", false, true},
		{"TRUE", false, true},
		{"0", true, false},
		{"off", true, false},
		{" N ", true, false},
		{"", true, true},        // empty -> default
		{"maybe", false, false}, // unknown -> default
	}
	for _, tc := range cases {
		t.Setenv("H_BOOL", tc.in)
		if got := getbool("H_BOOL", tc.def); got != tc.want {
			t.Fatalf("getbool(%q, %v) = %v; want %v", tc.in, tc.def, got, tc.want)
		}
	}
}

func TestSplitCSVAndBasePath(t *testing.T) {
	if splitCSV("") != nil {
		t.Fatalf("splitCSV(\"\") should be nil")
	}
	if got := splitCSV(" a, ,b ,  c  ,"); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("splitCSV mismatch: %#v", got)
	}

	for in, want := range map[string]string{
		"":     "/",
		" / ":  "/",
		"v1":   "/v1",
		"/v1/": "/v1",
	} {
		if got := normalizeBasePath(in); got != want {
			t.Fatalf("normalizeBasePath(%q) = %q; want %q", in, got, want)
		}
	}
}
