package config

// fileConfig is the YAML-file shape of Config. Durations are expressed
// in whole seconds in YAML (not Go duration strings) so gopkg.in/yaml.v3
// can unmarshal them without a custom decoder; mergeFile converts each
// into the runtime Config's time.Duration fields.
type fileConfig struct {
	Database *fileDatabase `yaml:"database"`
	API      *fileAPI      `yaml:"api"`
	LLM      *fileLLM      `yaml:"llm"`
	Mastery  *fileMastery  `yaml:"mastery"`
	Pool     *filePool     `yaml:"pool"`
	Planner  *filePlanner  `yaml:"planner"`
}

type fileDatabase struct {
	Host                     string `yaml:"host"`
	Port                     int    `yaml:"port"`
	User                     string `yaml:"user"`
	Password                 string `yaml:"password"`
	Name                     string `yaml:"name"`
	SSLMode                  string `yaml:"sslmode"`
	MaxOpenConns             int    `yaml:"max_open_conns"`
	MaxIdleConns             int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeSeconds   int    `yaml:"conn_max_lifetime_seconds"`
	ConnMaxIdleTimeSeconds   int    `yaml:"conn_max_idle_time_seconds"`
}

type fileAPI struct {
	Addr string `yaml:"addr"`
}

type fileLLM struct {
	PrimaryModel            string `yaml:"primary_model"`
	FallbackModel           string `yaml:"fallback_model"`
	PrimaryAddr             string `yaml:"primary_addr"`
	FallbackAddr            string `yaml:"fallback_addr"`
	RecoveryIntervalSeconds int    `yaml:"recovery_interval_seconds"`
	TimeoutSeconds          int    `yaml:"timeout_seconds"`
	RetryDelaysSeconds      []int  `yaml:"retry_delays_seconds"`
}

type fileMastery struct {
	EWMAAlpha      float64 `yaml:"ewma_alpha"`
	TimeDecayDaily float64 `yaml:"time_decay_daily"`
}

type filePool struct {
	KPerBand           int   `yaml:"k_per_band"`
	Ladder             []int `yaml:"ladder"`
	CooldownEasyDays   int   `yaml:"cooldown_easy_days"`
	CooldownMediumDays int   `yaml:"cooldown_medium_days"`
	CooldownHardDays   int   `yaml:"cooldown_hard_days"`
}

type filePlanner struct {
	MaxPerSubcategoryStrict  int `yaml:"max_per_subcategory_strict"`
	MaxPerSubcategoryRelaxed int `yaml:"max_per_subcategory_relaxed"`
	MaxPerSubcategoryCeiling int `yaml:"max_per_subcategory_ceiling"`
	PhaseACutoff             int `yaml:"phase_a_cutoff"`
	PhaseBCutoff             int `yaml:"phase_b_cutoff"`
}
