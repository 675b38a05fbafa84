// Package bootstrap loads configuration and wires the application together.
package bootstrap

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	ulog "github.com/LerianStudio/lib-uncommons/v2/uncommons/log"
	uzap "github.com/LerianStudio/lib-uncommons/v2/uncommons/zap"
	"github.com/shopspring/decimal"

	"github.com/caixadev/teller/internal/handler"
	"github.com/caixadev/teller/internal/registry"
)

// Config holds the deployment settings
type Config struct {
	WithdrawalCeiling decimal.Decimal
	MaxWithdrawals    int
	LogLevel          string
}

// LoadConfig reads configuration from the environment, falling back to the
// deployment defaults (ceiling 500, three withdrawals, info logging).
func LoadConfig() Config {
	policy := registry.DefaultCheckingPolicy()
	cfg := Config{
		WithdrawalCeiling: policy.WithdrawalCeiling,
		MaxWithdrawals:    policy.MaxWithdrawals,
		LogLevel:          getEnv("TELLER_LOG_LEVEL", "info"),
	}

	if raw := strings.TrimSpace(os.Getenv("TELLER_WITHDRAWAL_CEILING")); raw != "" {
		if ceiling, err := decimal.NewFromString(raw); err == nil && ceiling.IsPositive() {
			cfg.WithdrawalCeiling = ceiling
		}
	}

	if raw := strings.TrimSpace(os.Getenv("TELLER_WITHDRAWAL_COUNT")); raw != "" {
		if count, err := strconv.Atoi(raw); err == nil && count > 0 {
			cfg.MaxWithdrawals = count
		}
	}

	return cfg
}

// getEnv returns the trimmed value of key, or fallback when unset or blank
func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

// App is the assembled application
type App struct {
	Registry *registry.Registry
	Console  *handler.Console
	Logger   ulog.Logger
}

// New builds the logger, registry and console from cfg, bound to the given
// input and output streams.
func New(cfg Config, in io.Reader, out io.Writer) (*App, error) {
	logger, err := uzap.New(uzap.Config{
		Environment:     uzap.EnvironmentLocal,
		Level:           cfg.LogLevel,
		OTelLibraryName: "github.com/caixadev/teller",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	reg := registry.New(registry.CheckingPolicy{
		WithdrawalCeiling: cfg.WithdrawalCeiling,
		MaxWithdrawals:    cfg.MaxWithdrawals,
	})

	return &App{
		Registry: reg,
		Console:  handler.NewConsole(reg, in, out, logger),
		Logger:   logger,
	}, nil
}
