package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	if configPath := parseFlags(); configPath != "config.env" {
		t.Errorf("expected config.env, got %s", configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	if configPath := parseFlags(); configPath != "myconfig.env" {
		t.Errorf("expected myconfig.env, got %s", configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "Version: v1.0.0") ||
		!contains(output, "Commit: abcd1234") ||
		!contains(output, "Build: 2025-09-26") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	want := config{
		AppHost: "localhost", AppPort: "8080", LogLevel: "info",

		PGHost: "localhost", PGPort: 5432, PGUser: "user", PGPassword: "password", PGDB: "database",
		PGMaxOpenConns: 16, PGMaxIdleConns: 8,

		CacheBackend: "memory",
		RedisHost:    "localhost", RedisPort: 6379, RedisDB: 0, RedisPassword: "",
		RedisPoolSize: 10, RedisMinIdleConns: 2,
		CompanyCacheTTL: 10 * time.Minute,

		SessionSecretKey:    "my_super_secret_key",
		SessionTTL:          12 * time.Hour,
		SessionCookieName:   "gw_session",
		SessionCookieSecure: false,

		PasswordHasher: "sha256",

		KafkaTopic: "company-events",

		CORSAllowedOrigins: []string{"http://localhost:8080"},

		LoginRatePerSecond: 1,
		LoginRateBurst:     5,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("unexpected defaults:\n got  %+v\n want %+v", cfg, want)
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")

	os.Setenv("CACHE_BACKEND", "redis")
	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("COMPANY_CACHE_TTL_SECOND", "30")

	os.Setenv("SESSION_SECRET_KEY", "supersecret")
	os.Setenv("SESSION_TTL_SECOND", "300")
	os.Setenv("SESSION_COOKIE_SECURE", "true")
	os.Setenv("PASSWORD_HASHER", "bcrypt")

	os.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	os.Setenv("KAFKA_TOPIC", "companies")
	os.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	os.Setenv("LOGIN_RATE_PER_SECOND", "0.5")
	os.Setenv("LOGIN_RATE_BURST", "3")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.AppHost != "127.0.0.1" || cfg.AppPort != "9090" || cfg.LogLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if cfg.PGHost != "pg.example.com" || cfg.PGPort != 5433 || cfg.PGMaxOpenConns != 20 {
		t.Errorf("unexpected postgres config")
	}
	if cfg.CacheBackend != "redis" || cfg.RedisHost != "redis.example.com" || cfg.RedisPort != 6380 ||
		cfg.CompanyCacheTTL != 30*time.Second {
		t.Errorf("unexpected cache config")
	}
	if cfg.SessionSecretKey != "supersecret" || cfg.SessionTTL != 5*time.Minute || !cfg.SessionCookieSecure {
		t.Errorf("unexpected session config")
	}
	if cfg.PasswordHasher != "bcrypt" {
		t.Errorf("unexpected password hasher %q", cfg.PasswordHasher)
	}
	if !reflect.DeepEqual(cfg.KafkaBrokers, []string{"k1:9092", "k2:9092"}) || cfg.KafkaTopic != "companies" {
		t.Errorf("unexpected kafka config: %v %s", cfg.KafkaBrokers, cfg.KafkaTopic)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Errorf("unexpected cors origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.LoginRatePerSecond != 0.5 || cfg.LoginRateBurst != 3 {
		t.Errorf("unexpected limiter config")
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"POSTGRES_PORT":         "not-a-port",
		"REDIS_DB":              "x",
		"SESSION_TTL_SECOND":    "12h",
		"SESSION_COOKIE_SECURE": "maybe",
		"CACHE_BACKEND":         "memcached",
		"LOGIN_RATE_PER_SECOND": "fast",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			resetEnv()
			os.Setenv(key, value)
			if _, err := parseConfig("nonexistent.env"); err == nil {
				t.Errorf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestParseConfig_EnvFile(t *testing.T) {
	resetEnv()
	path := t.TempDir() + "/test.env"
	if err := os.WriteFile(path, []byte("APP_PORT=7070\nPASSWORD_HASHER=bcrypt\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	os.Setenv("APP_PORT", "6060")

	cfg, err := parseConfig(path)
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}
	if cfg.AppPort != "6060" {
		t.Errorf("environment must win over the file, got %s", cfg.AppPort)
	}
	if cfg.PasswordHasher != "bcrypt" {
		t.Errorf("file value not loaded, got %s", cfg.PasswordHasher)
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	cfg := config{
		AppHost: "127.0.0.1", AppPort: "8086", LogLevel: "debug",

		PGHost: pgHost, PGPort: pgPort.Int(), PGUser: "user", PGPassword: "password", PGDB: "testdb",
		PGMaxOpenConns: 5, PGMaxIdleConns: 2,

		CacheBackend: "redis",
		RedisHost:    redisHost, RedisPort: redisPort.Int(),
		RedisPoolSize: 10, RedisMinIdleConns: 2,
		CompanyCacheTTL: time.Minute,

		SessionSecretKey:  "testsecret",
		SessionTTL:        time.Hour,
		SessionCookieName: "gw_session",
		PasswordHasher:    "sha256",

		CORSAllowedOrigins: []string{"http://localhost:8086"},
		LoginRatePerSecond: 1,
		LoginRateBurst:     5,
	}

	// ------------------ Run ------------------
	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	// ------------------ Probe while running ------------------
	base := fmt.Sprintf("http://%s:%s", cfg.AppHost, cfg.AppPort)
	var healthy bool
	for i := 0; i < 30 && !healthy; i++ {
		resp, err := http.Get(base + "/healthz")
		if err == nil {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			healthy = resp.StatusCode == http.StatusOK && string(body) == "ok"
		}
		if !healthy {
			time.Sleep(200 * time.Millisecond)
		}
	}
	if !healthy {
		t.Fatal("server never became healthy")
	}

	resp, err := http.Get(base + "/api/companies")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for the API without a session, got %d", resp.StatusCode)
	}

	noRedirect := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	resp, err = noRedirect.Get(base + "/companies")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Errorf("expected redirect to login, got %d", resp.StatusCode)
	}

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}
