package config

import "time"

// DefaultConfig returns the built-in defaults named in spec.md §6, used
// as the merge base before any YAML file or environment override is
// applied.
func DefaultConfig() *Config {
	return &Config{
		Database: Database{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "",
			Name:            "adaptivecat",
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    10,
			ConnMaxLifetime: 30 * time.Minute,
			ConnMaxIdleTime: 5 * time.Minute,
		},
		API: API{
			Addr: ":8080",
		},
		LLM: LLM{
			PrimaryModel:     "gemini-2.5-pro",
			FallbackModel:    "gemini-2.0-flash",
			PrimaryAddr:      "localhost:50051",
			FallbackAddr:     "localhost:50051",
			RecoveryInterval: 1800 * time.Second,
			Timeout:          60 * time.Second,
			RetryDelays:      []time.Duration{3 * time.Second, 7 * time.Second, 15 * time.Second, 30 * time.Second},
		},
		Mastery: Mastery{
			EWMAAlpha:      0.6,
			TimeDecayDaily: 0.95,
		},
		Pool: Pool{
			KPerBand:       80,
			Ladder:         []int{80, 160, 320},
			CooldownEasy:   0,
			CooldownMedium: 0,
			CooldownHard:   0,
		},
		Planner: PlannerTuning{
			MaxPerSubcategoryStrict:  3,
			MaxPerSubcategoryRelaxed: 5,
			MaxPerSubcategoryCeiling: 0,
			PhaseACutoff:             30,
			PhaseBCutoff:             60,
		},
	}
}
