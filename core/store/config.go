package store

import (
	"net"
	"strconv"
	"time"
)

// Config holds configuration for the Redis datastore.
type Config struct {
	// Host is the Redis host.
	Host string `mapstructure:"host" env:"REDIS_HOST" default:"127.0.0.1"`
	// Port is the Redis port.
	Port int `mapstructure:"port" env:"REDIS_PORT" default:"6379"`
	// Password is the AUTH token, empty when the server has none.
	Password string `mapstructure:"password" env:"REDIS_PASSWORD" default:""`
	// Timeout bounds dialing and each command.
	Timeout time.Duration `mapstructure:"timeout" default:"2s"`
}

// Addr returns the host:port pair of the server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
