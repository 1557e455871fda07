package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=javer_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultHTTPAddr = ":8001"
const defaultInternalKey = "INTERNAL_SECRET"
const defaultTokenTTLMinutes = 60
const defaultPoolSize = 5
const defaultRequestTimeoutSeconds = 30

type Config struct {
	DatabaseDSN    string
	MigrationsDir  string
	HTTPAddr       string
	InternalKey    string
	TokenSecret    string
	TokenTTL       time.Duration
	PoolSize       int
	RequestTimeout time.Duration
}

func Load() (Config, error) {
	conn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if conn == "" {
		conn = defaultConnectionString
	}

	addr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if addr == "" {
		addr = defaultHTTPAddr
	}

	internalKey := strings.TrimSpace(os.Getenv("INTERNAL_KEY"))
	if internalKey == "" {
		internalKey = defaultInternalKey
	}

	tokenSecret := strings.TrimSpace(os.Getenv("SECRET_KEY"))

	return Config{
		DatabaseDSN:    normalizeConnectionString(conn),
		MigrationsDir:  filepath.Join("migrations"),
		HTTPAddr:       addr,
		InternalKey:    internalKey,
		TokenSecret:    tokenSecret,
		TokenTTL:       time.Duration(intEnv("TOKEN_TTL_MINUTES", defaultTokenTTLMinutes)) * time.Minute,
		PoolSize:       intEnv("DB_POOL_SIZE", defaultPoolSize),
		RequestTimeout: time.Duration(intEnv("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeoutSeconds)) * time.Second,
	}, nil
}

func intEnv(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}

	return value
}

func normalizeConnectionString(raw string) string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
