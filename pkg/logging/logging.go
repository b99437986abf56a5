// Package logging provides the leveled loggers used across owo.
//
// Loggers are backed by go-logger. Hosts that embed owo can swap the process
// wide provider with SetProvider, for example to route output into the host's
// own log file or to silence debug output.
package logging

import (
	"fmt"
	"strings"
	"sync"

	glog "github.com/goliatone/go-logger/glog"
)

// Logger is the leveled logging contract used by owo packages.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config selects the level and output format of a Provider.
type Config struct {
	// Level is one of trace, debug, info, warn, error. Empty means info.
	Level string `yaml:"level,omitempty"`
	// Format is one of console, json, pretty. Empty means console.
	Format string `yaml:"format,omitempty"`
}

// Provider hands out named child loggers sharing one root configuration.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider constructs a provider backed by go-logger.
func NewProvider(cfg Config) (*Provider, error) {
	options := []glog.Option{}

	if level := normalizeLevel(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}

	return &Provider{root: glog.NewLogger(options...)}, nil
}

// Get returns the logger for a named module. An empty name yields the root.
func (p *Provider) Get(name string) Logger {
	if p == nil || p.root == nil {
		return NoOp()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return p.root
	}
	return p.root.GetLogger(name)
}

var (
	providerMu sync.RWMutex
	provider   *Provider
)

// SetProvider replaces the process wide provider. Pass nil to restore the
// default console provider.
func SetProvider(p *Provider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	provider = p
}

// Get returns a named logger from the process wide provider.
func Get(name string) Logger {
	providerMu.RLock()
	p := provider
	providerMu.RUnlock()
	if p != nil {
		return p.Get(name)
	}

	providerMu.Lock()
	defer providerMu.Unlock()
	if provider == nil {
		created, err := NewProvider(Config{})
		if err != nil {
			return NoOp()
		}
		provider = created
	}
	return provider.Get(name)
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// NoOp returns a logger that discards everything.
func NoOp() Logger {
	return noopLogger{}
}
