package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML config file at path (if path is non-empty and
// exists), merges it over DefaultConfig, applies the environment
// variable overrides spec.md §6 documents, and validates the result.
// An empty path loads defaults plus environment overrides only.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := mergeFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := NewValidator(cfg).ValidateAll(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	slog.Info("configuration loaded",
		"llm_primary_model", cfg.LLM.PrimaryModel,
		"llm_fallback_model", cfg.LLM.FallbackModel,
		"pool_k_per_band", cfg.Pool.KPerBand)

	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return NewLoadError(path, err)
	}

	expanded := ExpandEnv(raw)

	var fc fileConfig
	if err := yaml.Unmarshal(expanded, &fc); err != nil {
		return NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	if fc.Database != nil {
		userDB := Database{
			Host:     fc.Database.Host,
			Port:     fc.Database.Port,
			User:     fc.Database.User,
			Password: fc.Database.Password,
			Name:     fc.Database.Name,
			SSLMode:  fc.Database.SSLMode,

			MaxOpenConns: fc.Database.MaxOpenConns,
			MaxIdleConns: fc.Database.MaxIdleConns,
		}
		if fc.Database.ConnMaxLifetimeSeconds > 0 {
			userDB.ConnMaxLifetime = time.Duration(fc.Database.ConnMaxLifetimeSeconds) * time.Second
		}
		if fc.Database.ConnMaxIdleTimeSeconds > 0 {
			userDB.ConnMaxIdleTime = time.Duration(fc.Database.ConnMaxIdleTimeSeconds) * time.Second
		}
		if err := mergo.Merge(&cfg.Database, userDB, mergo.WithOverride); err != nil {
			return fmt.Errorf("config: merge database section: %w", err)
		}
	}
	if fc.API != nil && fc.API.Addr != "" {
		cfg.API.Addr = fc.API.Addr
	}
	if fc.LLM != nil {
		userLLM := LLM{
			PrimaryModel:  fc.LLM.PrimaryModel,
			FallbackModel: fc.LLM.FallbackModel,
			PrimaryAddr:   fc.LLM.PrimaryAddr,
			FallbackAddr:  fc.LLM.FallbackAddr,
		}
		if fc.LLM.RecoveryIntervalSeconds > 0 {
			userLLM.RecoveryInterval = time.Duration(fc.LLM.RecoveryIntervalSeconds) * time.Second
		}
		if fc.LLM.TimeoutSeconds > 0 {
			userLLM.Timeout = time.Duration(fc.LLM.TimeoutSeconds) * time.Second
		}
		if len(fc.LLM.RetryDelaysSeconds) > 0 {
			userLLM.RetryDelays = secondsToDelays(fc.LLM.RetryDelaysSeconds)
		}
		if err := mergo.Merge(&cfg.LLM, userLLM, mergo.WithOverride); err != nil {
			return fmt.Errorf("config: merge llm section: %w", err)
		}
	}
	if fc.Mastery != nil {
		if err := mergo.Merge(&cfg.Mastery, Mastery(*fc.Mastery), mergo.WithOverride); err != nil {
			return fmt.Errorf("config: merge mastery section: %w", err)
		}
	}
	if fc.Pool != nil {
		userPool := Pool{
			KPerBand:       fc.Pool.KPerBand,
			Ladder:         fc.Pool.Ladder,
			CooldownEasy:   fc.Pool.CooldownEasyDays,
			CooldownMedium: fc.Pool.CooldownMediumDays,
			CooldownHard:   fc.Pool.CooldownHardDays,
		}
		if err := mergo.Merge(&cfg.Pool, userPool, mergo.WithOverride); err != nil {
			return fmt.Errorf("config: merge pool section: %w", err)
		}
	}
	if fc.Planner != nil {
		userPlanner := PlannerTuning(*fc.Planner)
		if err := mergo.Merge(&cfg.Planner, userPlanner, mergo.WithOverride); err != nil {
			return fmt.Errorf("config: merge planner section: %w", err)
		}
	}

	return nil
}

func secondsToDelays(seconds []int) []time.Duration {
	out := make([]time.Duration, len(seconds))
	for i, s := range seconds {
		out[i] = time.Duration(s) * time.Second
	}
	return out
}

// applyEnvOverrides applies the named environment variables of
// spec.md §6 directly over whatever defaults/YAML produced, so a
// deployment can tune the process without a config file at all.
func applyEnvOverrides(cfg *Config) {
	strVar(&cfg.Database.Host, "DB_HOST")
	intVar(&cfg.Database.Port, "DB_PORT")
	strVar(&cfg.Database.User, "DB_USER")
	strVar(&cfg.Database.Password, "DB_PASSWORD")
	strVar(&cfg.Database.Name, "DB_NAME")
	strVar(&cfg.Database.SSLMode, "DB_SSLMODE")
	strVar(&cfg.API.Addr, "API_ADDR")

	strVar(&cfg.LLM.PrimaryModel, "LLM_PRIMARY_MODEL")
	strVar(&cfg.LLM.FallbackModel, "LLM_FALLBACK_MODEL")
	strVar(&cfg.LLM.PrimaryAddr, "LLM_PRIMARY_ADDR")
	strVar(&cfg.LLM.FallbackAddr, "LLM_FALLBACK_ADDR")
	durSecondsVar(&cfg.LLM.RecoveryInterval, "LLM_RECOVERY_INTERVAL_SECONDS")
	durSecondsVar(&cfg.LLM.Timeout, "LLM_TIMEOUT_SECONDS")
	if v, ok := os.LookupEnv("LLM_RETRY_DELAYS"); ok {
		if delays, err := parseDelayList(v); err == nil {
			cfg.LLM.RetryDelays = delays
		} else {
			slog.Warn("config: ignoring malformed LLM_RETRY_DELAYS", "value", v, "error", err)
		}
	}

	floatVar(&cfg.Mastery.EWMAAlpha, "EWMA_ALPHA")
	floatVar(&cfg.Mastery.TimeDecayDaily, "TIME_DECAY_DAILY")

	intVar(&cfg.Pool.KPerBand, "POOL_K_PER_BAND")
	if v, ok := os.LookupEnv("POOL_LADDER"); ok {
		if ladder, err := parseIntList(v); err == nil {
			cfg.Pool.Ladder = ladder
		} else {
			slog.Warn("config: ignoring malformed POOL_LADDER", "value", v, "error", err)
		}
	}
	intVar(&cfg.Pool.CooldownEasy, "COOLDOWN_EASY_DAYS")
	intVar(&cfg.Pool.CooldownMedium, "COOLDOWN_MEDIUM_DAYS")
	intVar(&cfg.Pool.CooldownHard, "COOLDOWN_HARD_DAYS")

	intVar(&cfg.Planner.MaxPerSubcategoryStrict, "MAX_PER_SUBCATEGORY_STRICT")
	intVar(&cfg.Planner.MaxPerSubcategoryRelaxed, "MAX_PER_SUBCATEGORY_RELAXED")
	intVar(&cfg.Planner.MaxPerSubcategoryCeiling, "MAX_PER_SUBCATEGORY_CEILING")
	intVar(&cfg.Planner.PhaseACutoff, "PHASE_A_CUTOFF")
	intVar(&cfg.Planner.PhaseBCutoff, "PHASE_B_CUTOFF")
}

func strVar(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func intVar(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func floatVar(dst *float64, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func durSecondsVar(dst *time.Duration, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = time.Duration(n) * time.Second
		}
	}
}

func parseIntList(v string) ([]int, error) {
	parts := strings.Split(v, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func parseDelayList(v string) ([]time.Duration, error) {
	ints, err := parseIntList(v)
	if err != nil {
		return nil, err
	}
	return secondsToDelays(ints), nil
}
