// Package config loads and validates the planner process's
// configuration: LLM provider selection and timeouts, mastery and
// pooling tunables, and the phase cutoffs, all of which spec.md §6
// documents as environment-overridable with fixed defaults.
package config

import (
	"time"

	"github.com/adaptivecat/planner/pkg/store"
)

// Config is the fully-resolved, validated configuration for one
// planner process.
type Config struct {
	Database Database
	API      API
	LLM      LLM
	Mastery  Mastery
	Pool     Pool
	Planner  PlannerTuning
}

// Database holds the Postgres connection parameters handed to
// store.Config.
type Database struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`

	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// API holds the HTTP server's listen address.
type API struct {
	Addr string `yaml:"addr"`
}

// LLM holds C3's provider selection and retry policy, per spec.md §6's
// environment/configuration clause.
type LLM struct {
	PrimaryModel     string          `yaml:"primary_model"`
	FallbackModel    string          `yaml:"fallback_model"`
	PrimaryAddr      string          `yaml:"primary_addr"`
	FallbackAddr     string          `yaml:"fallback_addr"`
	RecoveryInterval time.Duration   `yaml:"recovery_interval"`
	Timeout          time.Duration   `yaml:"timeout"`
	RetryDelays      []time.Duration `yaml:"retry_delays"`
}

// Mastery holds C6's EWMA tunables.
type Mastery struct {
	EWMAAlpha      float64 `yaml:"ewma_alpha"`
	TimeDecayDaily float64 `yaml:"time_decay_daily"`
}

// Pool holds C8's candidate-pool sizing ladder and cooldown windows.
type Pool struct {
	KPerBand       int   `yaml:"k_per_band"`
	Ladder         []int `yaml:"ladder"`
	CooldownEasy   int   `yaml:"cooldown_easy_days"`
	CooldownMedium int   `yaml:"cooldown_medium_days"`
	CooldownHard   int   `yaml:"cooldown_hard_days"`
}

// PlannerTuning holds C7's diversity-cap ladder and phase cutoffs.
type PlannerTuning struct {
	MaxPerSubcategoryStrict  int `yaml:"max_per_subcategory_strict"`
	MaxPerSubcategoryRelaxed int `yaml:"max_per_subcategory_relaxed"`
	MaxPerSubcategoryCeiling int `yaml:"max_per_subcategory_ceiling"` // 0 means unlimited
	PhaseACutoff             int `yaml:"phase_a_cutoff"`
	PhaseBCutoff             int `yaml:"phase_b_cutoff"`
}

// ToStoreConfig maps the database section onto store.Config, the shape
// pkg/store.NewClient consumes.
func (c *Config) ToStoreConfig() store.Config {
	return store.Config{
		Host:            c.Database.Host,
		Port:            c.Database.Port,
		User:            c.Database.User,
		Password:        c.Database.Password,
		Database:        c.Database.Name,
		SSLMode:         c.Database.SSLMode,
		MaxOpenConns:    c.Database.MaxOpenConns,
		MaxIdleConns:    c.Database.MaxIdleConns,
		ConnMaxLifetime: c.Database.ConnMaxLifetime,
		ConnMaxIdleTime: c.Database.ConnMaxIdleTime,
	}
}
