package main

import (
	"encoding/json"
	"net"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

const (
	DefaultHost = "localhost"
	DefaultPort = 8888
)

type rawConfig struct {
	Destination       string `json:"destination"`
	LogDir            string `json:"log_dir"`
	LogLevel          string `json:"log_level"`
	LogFileSize       int    `json:"log_file_size"`
	LogFileMaxBackups int    `json:"log_file_max_backups"`
}

type Config struct {
	Destination Destination
	Log         LogConfig
}

// Destination is where every datagram of a run is sent.
type Destination struct {
	Host string
	Port int
}

// Address returns the destination in host:port form, bracketing IPv6 literals.
func (d Destination) Address() string {
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}

func (d Destination) String() string {
	return d.Address()
}

func DefaultConfig() *Config {
	return &Config{
		Destination: Destination{Host: DefaultHost, Port: DefaultPort},
		Log: LogConfig{
			Level:          "warn",
			FileSize:       10,
			FileMaxBackups: 3,
		},
	}
}

// LoadConfiguration reads a JSON configuration file on top of DefaultConfig.
// Fields missing from the file keep their default value.
func LoadConfiguration(filename string) (*Config, error) {
	config := DefaultConfig()
	var rawConfig rawConfig

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read configuration file")
	}

	if err = json.Unmarshal(content, &rawConfig); err != nil {
		return nil, errors.Wrapf(err, "configuration file problem in %s", filename)
	}

	if rawConfig.Destination != "" {
		dest, err := ParseDestination(rawConfig.Destination)
		if err != nil {
			return nil, err
		}
		config.Destination = dest
	}

	config.Log.Dir = rawConfig.LogDir
	if rawConfig.LogLevel != "" {
		config.Log.Level = rawConfig.LogLevel
	}
	if rawConfig.LogFileSize > 0 {
		config.Log.FileSize = rawConfig.LogFileSize
	}
	if rawConfig.LogFileMaxBackups > 0 {
		config.Log.FileMaxBackups = rawConfig.LogFileMaxBackups
	}

	return config, nil
}

// ParseDestination splits a host:port string. The port is only checked to be
// numeric, its range is left to the socket layer.
func ParseDestination(hostport string) (Destination, error) {
	host, port, err := net.SplitHostPort(hostport)
	if err != nil {
		return Destination{}, errors.Wrapf(err, "destination bad format: %s", hostport)
	}

	p, err := strconv.Atoi(port)
	if err != nil {
		return Destination{}, errors.Errorf("port bad format for destination: %s", hostport)
	}

	return Destination{Host: host, Port: p}, nil
}
