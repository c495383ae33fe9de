package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

func main() {
	flags := newFlagSet()
	flags.Parse(os.Args[1:])

	config, err := configFromFlags(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration, error: %s\n", err)
		os.Exit(1)
	}

	InitLogger(config.Log)
	defer slogger.Sync()
	slogger.Debugf("Configuration: %+v", *config)

	sender := NewUDPSender(config.Destination, os.Stdout)
	seq := NewSequence(config.Destination, DefaultMessages(time.Now()), os.Stdin, os.Stdout)
	seq.Run(sender)
}

func newFlagSet() *pflag.FlagSet {
	defaults := DefaultConfig()

	flags := pflag.NewFlagSet("udp-log-sender", pflag.ExitOnError)
	flags.StringP("config", "f", "", "configuration file")
	flags.String("host", defaults.Destination.Host, "destination host")
	flags.Int("port", defaults.Destination.Port, "destination port")
	flags.String("log-dir", defaults.Log.Dir, "directory of the rolling log file, none when empty")
	flags.String("log-level", defaults.Log.Level, "one of debug,info,warn,error")
	flags.Int("log-file-size", defaults.Log.FileSize, "log file size in MB before rotation")
	flags.Int("log-file-max-backups", defaults.Log.FileMaxBackups, "rotated log files to keep")
	return flags
}

// configFromFlags loads the configuration file, if any, and lets flags given
// on the command line override it.
func configFromFlags(flags *pflag.FlagSet) (*Config, error) {
	config := DefaultConfig()

	filename, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if filename != "" {
		if config, err = LoadConfiguration(filename); err != nil {
			return nil, err
		}
	}

	stringFlags := map[string]*string{
		"host":      &config.Destination.Host,
		"log-dir":   &config.Log.Dir,
		"log-level": &config.Log.Level,
	}
	for name, dst := range stringFlags {
		if flags.Changed(name) {
			if *dst, err = flags.GetString(name); err != nil {
				return nil, err
			}
		}
	}

	intFlags := map[string]*int{
		"port":                 &config.Destination.Port,
		"log-file-size":        &config.Log.FileSize,
		"log-file-max-backups": &config.Log.FileMaxBackups,
	}
	for name, dst := range intFlags {
		if flags.Changed(name) {
			if *dst, err = flags.GetInt(name); err != nil {
				return nil, err
			}
		}
	}

	return config, nil
}
