package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-company-portal/docs"
	"github.com/sbilibin2017/gw-company-portal/internal/cache"
	"github.com/sbilibin2017/gw-company-portal/internal/handlers"
	"github.com/sbilibin2017/gw-company-portal/internal/logger"
	"github.com/sbilibin2017/gw-company-portal/internal/metrics"
	"github.com/sbilibin2017/gw-company-portal/internal/middlewares"
	"github.com/sbilibin2017/gw-company-portal/internal/migrations"
	"github.com/sbilibin2017/gw-company-portal/internal/passwords"
	"github.com/sbilibin2017/gw-company-portal/internal/repositories"
	"github.com/sbilibin2017/gw-company-portal/internal/services"
	"github.com/sbilibin2017/gw-company-portal/internal/session"
	"github.com/sbilibin2017/gw-company-portal/internal/views"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the env file and the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	CacheBackend      string
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	CompanyCacheTTL   time.Duration

	SessionSecretKey    string
	SessionTTL          time.Duration
	SessionCookieName   string
	SessionCookieSecure bool

	PasswordHasher string

	KafkaBrokers []string
	KafkaTopic   string

	CORSAllowedOrigins []string

	LoginRatePerSecond float64
	LoginRateBurst     int
}

// @title gw-company-portal API
// @version 1.0.0
// @description Company, LLM and chatbot management with cookie sessions
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey Session
// @in cookie
// @name gw_session
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, cache, session, messaging and limiter settings.
// Values already present in the environment win over the file.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getList := func(key, defaultValue string) []string {
		var out []string
		for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Cache and Redis config
	cfg.CacheBackend = getEnv("CACHE_BACKEND", "memory")
	if cfg.CacheBackend != "memory" && cfg.CacheBackend != "redis" {
		err = fmt.Errorf("CACHE_BACKEND: unknown backend %q", cfg.CacheBackend)
		return
	}
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	var ttlSecond int
	if ttlSecond, err = getInt("COMPANY_CACHE_TTL_SECOND", "600"); err != nil {
		return
	}
	cfg.CompanyCacheTTL = time.Duration(ttlSecond) * time.Second

	// Session config
	cfg.SessionSecretKey = getEnv("SESSION_SECRET_KEY", "my_super_secret_key")
	if ttlSecond, err = getInt("SESSION_TTL_SECOND", "43200"); err != nil {
		return
	}
	cfg.SessionTTL = time.Duration(ttlSecond) * time.Second
	cfg.SessionCookieName = getEnv("SESSION_COOKIE_NAME", "gw_session")
	if cfg.SessionCookieSecure, err = strconv.ParseBool(getEnv("SESSION_COOKIE_SECURE", "false")); err != nil {
		err = fmt.Errorf("SESSION_COOKIE_SECURE: %w", err)
		return
	}

	cfg.PasswordHasher = getEnv("PASSWORD_HASHER", "sha256")

	// Kafka config
	cfg.KafkaBrokers = getList("KAFKA_BROKERS", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "company-events")

	cfg.CORSAllowedOrigins = getList("CORS_ALLOWED_ORIGINS", "http://localhost:8080")

	// Login rate limiter config
	if cfg.LoginRatePerSecond, err = strconv.ParseFloat(getEnv("LOGIN_RATE_PER_SECOND", "1"), 64); err != nil {
		err = fmt.Errorf("LOGIN_RATE_PER_SECOND: %w", err)
		return
	}
	if cfg.LoginRateBurst, err = getInt("LOGIN_RATE_BURST", "5"); err != nil {
		return
	}

	return
}

// run initializes the logger, database, cache, session manager and HTTP
// server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Company list cache and revoked sessions live in Redis or in memory
	var (
		companyCache services.CompanyListCache
		revoker      session.Revoker
	)
	switch cfg.CacheBackend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		companyCache = cache.NewCompanyListRedisCache(rdb, cfg.CompanyCacheTTL)
		revoker = cache.NewRevokedSessionsRedis(rdb)
	default:
		companyCache = cache.NewCompanyListMemoryCache(cfg.CompanyCacheTTL)
		revoker = cache.NewRevokedSessionsMemory()
	}

	// Company change events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing company events to %s", cfg.KafkaTopic)
	}

	hasher, err := passwords.New(cfg.PasswordHasher)
	if err != nil {
		return err
	}

	// Initialize session manager
	sessions := session.New(
		session.WithSecretKey(cfg.SessionSecretKey),
		session.WithExpiration(cfg.SessionTTL),
		session.WithCookie(cfg.SessionCookieName, cfg.SessionCookieSecure),
		session.WithRevoker(revoker),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	companyReadRepo := repositories.NewCompanyReadRepository(db, middlewares.GetTxFromContext)
	companyWriteRepo := repositories.NewCompanyWriteRepository(db, middlewares.GetTxFromContext)
	llmRepo := repositories.NewLLMRepository(db, middlewares.GetTxFromContext)
	chatbotRepo := repositories.NewChatbotRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	userService := services.NewUserService(userReadRepo, userWriteRepo, hasher)
	authService := services.NewAuthService(userService, sessions)
	companyService := services.NewCompanyService(companyReadRepo, companyWriteRepo, companyCache, kafkaWriter, middlewares.AfterCommit)
	llmService := services.NewLLMService(companyReadRepo, llmRepo)
	chatbotService := services.NewChatbotService(companyReadRepo, chatbotRepo)

	renderer, err := views.New()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	// Initialize handlers
	llmHandlers := handlers.NewLLMHandlers(llmService)
	chatbotHandlers := handlers.NewChatbotHandlers(chatbotService)
	accountHandlers := handlers.NewAccountHandlers(authService, sessions, renderer)
	companyPageHandlers := handlers.NewCompanyPageHandlers(companyService, renderer)

	loginLimiter := middlewares.NewRateLimiter(cfg.LoginRatePerSecond, cfg.LoginRateBurst)
	tx := middlewares.TxMiddleware(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Location", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Handle("/metrics", metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	// Public API routes
	handlers.RegisterAuthenticateHandler(r.With(loginLimiter.Handler), handlers.NewAuthenticateHandler(userService))

	// Protected API routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(sessions))

		handlers.RegisterListUsersHandler(r, handlers.NewListUsersHandler(userService))
		handlers.RegisterActiveUsersHandler(r, handlers.NewActiveUsersHandler(userService))
		handlers.RegisterGetUserHandler(r, handlers.NewGetUserHandler(userService))
		handlers.RegisterListCompaniesHandler(r, handlers.NewListCompaniesHandler(companyService))
		handlers.RegisterGetCompanyHandler(r, handlers.NewGetCompanyHandler(companyService))
		handlers.RegisterLLMReadHandlers(r, llmHandlers)
		handlers.RegisterChatbotReadHandlers(r, chatbotHandlers)

		r.Group(func(r chi.Router) {
			r.Use(tx)

			handlers.RegisterCreateUserHandler(r, handlers.NewCreateUserHandler(userService))
			handlers.RegisterUpdateUserHandler(r, handlers.NewUpdateUserHandler(userService))
			handlers.RegisterDeleteUserHandler(r, handlers.NewDeleteUserHandler(userService))
			handlers.RegisterCreateCompanyHandler(r, handlers.NewCreateCompanyHandler(companyService))
			handlers.RegisterUpdateCompanyHandler(r, handlers.NewUpdateCompanyHandler(companyService))
			handlers.RegisterDeleteCompanyHandler(r, handlers.NewDeleteCompanyHandler(companyService))
			handlers.RegisterLLMWriteHandlers(r, llmHandlers)
			handlers.RegisterChatbotWriteHandlers(r, chatbotHandlers)
		})
	})

	// Public pages
	r.Group(func(r chi.Router) {
		r.Use(middlewares.OptionalSessionMiddleware(sessions))
		handlers.RegisterAccountHandlers(r, accountHandlers, loginLimiter.Handler)
	})

	// Signed-in pages
	r.Group(func(r chi.Router) {
		r.Use(middlewares.PageAuthMiddleware(sessions, "/account/login"))
		handlers.RegisterCompanyPageHandlers(r, companyPageHandlers, tx)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, http.StatusNotFound, views.NotFound, views.Data{Title: "Not found"})
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	loginLimiter.StartCleanup(ctxShutdown, time.Minute)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
