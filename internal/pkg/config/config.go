package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		PendingOrderCleanupInterval time.Duration
		PendingOrderMaxAge          time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Matching struct {
		EarningsRate       float64
		MinutesPerKm       float64
		PrepMinutes        float64
		MinEstimateMinutes int
		DefaultLatitude    float64
		DefaultLongitude   float64
		MaxDistanceKm      float64
		MaxCandidates      int
		PoolLimit          int
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PaymentStatusChanged PaymentStatusChanged
	}

	PaymentStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Matching Matching
		Kafka    Kafka
	}
)

// Matching defaults: Lagos as the fallback origin, a 15 km service radius and
// a screenful of candidates.
const (
	defaultEarningsRate       = 0.15
	defaultMinutesPerKm       = 3
	defaultPrepMinutes        = 15
	defaultMinEstimateMinutes = 25
	defaultLatitude           = 6.5244
	defaultLongitude          = 3.3792
	defaultMaxDistanceKm      = 15
	defaultMaxCandidates      = 10
	defaultPoolLimit          = 20
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	cleanupInterval, err := osGetEnvDuration("BACKGROUND_PENDING_ORDER_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pendingMaxAge, err := osGetEnvDuration("BACKGROUND_PENDING_ORDER_MAX_AGE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paymentStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PAYMENT_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	matching, err := loadMatchingFromEnv()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			PendingOrderCleanupInterval: cleanupInterval,
			PendingOrderMaxAge:          pendingMaxAge,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Matching: matching,
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PaymentStatusChanged: PaymentStatusChanged{
					ProcessTimeout: paymentStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func loadMatchingFromEnv() (Matching, error) {
	matching := Matching{
		EarningsRate:       defaultEarningsRate,
		MinutesPerKm:       defaultMinutesPerKm,
		PrepMinutes:        defaultPrepMinutes,
		MinEstimateMinutes: defaultMinEstimateMinutes,
		DefaultLatitude:    defaultLatitude,
		DefaultLongitude:   defaultLongitude,
		MaxDistanceKm:      defaultMaxDistanceKm,
		MaxCandidates:      defaultMaxCandidates,
		PoolLimit:          defaultPoolLimit,
	}

	overrides := []struct {
		env    string
		target *float64
	}{
		{"MATCHING_EARNINGS_RATE", &matching.EarningsRate},
		{"MATCHING_MINUTES_PER_KM", &matching.MinutesPerKm},
		{"MATCHING_PREP_MINUTES", &matching.PrepMinutes},
		{"MATCHING_DEFAULT_LATITUDE", &matching.DefaultLatitude},
		{"MATCHING_DEFAULT_LONGITUDE", &matching.DefaultLongitude},
		{"MATCHING_MAX_DISTANCE_KM", &matching.MaxDistanceKm},
	}
	for _, o := range overrides {
		val, err := osGetFloat(o.env)
		if err != nil {
			return Matching{}, err
		}
		if val != 0 {
			*o.target = val
		}
	}

	minEstimate, err := osGetInt("MATCHING_MIN_ESTIMATE_MINUTES")
	if err != nil {
		return Matching{}, err
	}
	if minEstimate != 0 {
		matching.MinEstimateMinutes = minEstimate
	}

	maxCandidates, err := osGetInt("MATCHING_MAX_CANDIDATES")
	if err != nil {
		return Matching{}, err
	}
	if maxCandidates != 0 {
		matching.MaxCandidates = maxCandidates
	}

	poolLimit, err := osGetInt("MATCHING_POOL_LIMIT")
	if err != nil {
		return Matching{}, err
	}
	if poolLimit != 0 {
		matching.PoolLimit = poolLimit
	}

	return matching, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.PendingOrderCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PENDING_ORDER_CLEANUP_INTERVAL is required")
	}
	if cfg.Tasks.PendingOrderMaxAge == time.Duration(0) {
		return errors.New("BACKGROUND_PENDING_ORDER_MAX_AGE is required")
	}

	if cfg.Matching.EarningsRate <= 0 {
		return errors.New("MATCHING_EARNINGS_RATE must be positive")
	}
	if cfg.Matching.MaxDistanceKm <= 0 {
		return errors.New("MATCHING_MAX_DISTANCE_KM must be positive")
	}
	if cfg.Matching.MaxCandidates <= 0 {
		return errors.New("MATCHING_MAX_CANDIDATES must be positive")
	}
	if cfg.Matching.PoolLimit < cfg.Matching.MaxCandidates {
		return errors.New("MATCHING_POOL_LIMIT must not be below MATCHING_MAX_CANDIDATES")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.PaymentStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PAYMENT_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
