package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ktreeapp/ktree/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envKubeconfig = "KTREE_KUBECONFIG"
	envContext    = "KTREE_CONTEXT"
	envNamespace  = "KTREE_NAMESPACE"
	envType       = "KTREE_TYPE"
	envWidth      = "KTREE_WIDTH"
	envHeight     = "KTREE_HEIGHT"
	envTrace      = "KTREE_TRACE"
	envLogFile    = "KTREE_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("ktree", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	kubeconfig := fs.String("kubeconfig", envOrDefault(env, envKubeconfig, ""), "path to the kubeconfig file (defaults to the standard location)")
	kubeContext := fs.String("context", envOrDefault(env, envContext, ""), "kubeconfig context to use (defaults to the current context)")
	namespace := fs.String("namespace", envOrDefault(env, envNamespace, ""), "namespace to select on startup")
	kind := fs.String("type", envOrDefault(env, envType, ""), "object kind to select on startup")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Kubeconfig: *kubeconfig,
			Context:    *kubeContext,
			Namespace:  *namespace,
			Kind:       *kind,
			Width:      *width,
			Height:     *height,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"kubeconfig": *kubeconfig,
			"context":    *kubeContext,
			"namespace":  *namespace,
			"type":       *kind,
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
