package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

var environmentLogger = log.With().Str("logger_name", "util::environment").Logger()

type serverEnvironment struct {
	PersistMethod string
	RedisHost     string
	RedisPort     string
	RedisPW       string
	RedisDB       string
	NatsURL       string
	Port          string
	DisableNats   string
}

// Env is a helper object for accessing environment variables.
var Env = &serverEnvironment{
	PersistMethod: "PERSIST_METHOD",
	RedisHost:     "REDIS_HOST",
	RedisPort:     "REDIS_PORT",
	RedisPW:       "REDIS_PW",
	RedisDB:       "REDIS_DB",
	NatsURL:       "NATS_URL",
	Port:          "PORT",
	DisableNats:   "DISABLE_NATS",
}

func (e *serverEnvironment) GetPersistMethod() string {
	method := os.Getenv(e.PersistMethod)
	if method == "" {
		return "memory"
	}
	return method
}

func (e *serverEnvironment) GetRedisHost() string {
	host := os.Getenv(e.RedisHost)
	if host == "" {
		msg := fmt.Sprintf("%s is not defined", e.RedisHost)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return host
}

func (e *serverEnvironment) GetRedisPort() int {
	portStr := os.Getenv(e.RedisPort)
	if portStr == "" {
		return 6379
	}
	portNum, err := strconv.Atoi(portStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis port %s", portStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return portNum
}

func (e *serverEnvironment) GetRedisPW() string {
	return os.Getenv(e.RedisPW)
}

func (e *serverEnvironment) GetRedisDB() int {
	dbStr := os.Getenv(e.RedisDB)
	if dbStr == "" {
		return 0
	}
	dbNum, err := strconv.Atoi(dbStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis db %s", dbStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return dbNum
}

func (e *serverEnvironment) GetNatsURL() string {
	url := os.Getenv(e.NatsURL)
	if url == "" {
		return "nats://localhost:4222"
	}
	return url
}

func (e *serverEnvironment) GetPort() int {
	portStr := os.Getenv(e.Port)
	if portStr == "" {
		return 8080
	}
	portNum, err := strconv.Atoi(portStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid port %s", portStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return portNum
}

func (e *serverEnvironment) GetDisableNats() string {
	v := os.Getenv(e.DisableNats)
	if v == "" {
		return "false"
	}
	return v
}

func (e *serverEnvironment) ShouldDisableNats() bool {
	return e.GetDisableNats() == "1" || strings.ToLower(e.GetDisableNats()) == "true"
}
