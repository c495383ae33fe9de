package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "udp-log-sender.log"

// slogger is a no-op until InitLogger runs.
var slogger = zap.NewNop().Sugar()

type LogConfig struct {
	Dir            string
	Level          string
	FileSize       int
	FileMaxBackups int
}

// InitLogger replaces slogger. Entries go to stderr and, when cfg.Dir is set,
// to a rolling log file. The returned level can be changed at runtime.
func InitLogger(cfg LogConfig) zap.AtomicLevel {
	atom := zap.NewAtomicLevel()
	levelErr := atom.UnmarshalText([]byte(cfg.Level))
	if levelErr != nil {
		atom.SetLevel(zapcore.WarnLevel)
	}

	encoder := getEncoder()
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), atom),
	}
	if cfg.Dir != "" {
		cores = append(cores, zapcore.NewCore(encoder, getLogWriter(cfg), atom))
	}

	// Print function lines
	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	slogger = logger.Sugar()

	if levelErr != nil {
		slogger.Warnf("Unknown log level %q, using warn", cfg.Level)
	}
	return atom
}

func getEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// Save file log cut
func getLogWriter(cfg LogConfig) zapcore.WriteSyncer {
	lumberJackLogger := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, logFileName),
		MaxSize:    cfg.FileSize,       // MB
		MaxBackups: cfg.FileMaxBackups, // old files retained
		Compress:   false,
	}
	return zapcore.AddSync(lumberJackLogger)
}
