package config

import "fmt"

// Validator validates a fully-merged Config fail-fast, before the
// process starts serving traffic.
type Validator struct {
	cfg *Config
}

// NewValidator builds a Validator over cfg.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll validates every section, in dependency order, stopping
// at the first failure.
func (v *Validator) ValidateAll() error {
	if err := v.validateDatabase(); err != nil {
		return err
	}
	if err := v.validateLLM(); err != nil {
		return err
	}
	if err := v.validateMastery(); err != nil {
		return err
	}
	if err := v.validatePool(); err != nil {
		return err
	}
	if err := v.validatePlanner(); err != nil {
		return err
	}
	return nil
}

func (v *Validator) validateDatabase() error {
	d := v.cfg.Database
	if d.Host == "" {
		return NewValidationError("database.host", fmt.Errorf("must not be empty"))
	}
	if d.Port < 1 || d.Port > 65535 {
		return NewValidationError("database.port", fmt.Errorf("must be a valid TCP port, got %d", d.Port))
	}
	if d.Name == "" {
		return NewValidationError("database.name", fmt.Errorf("must not be empty"))
	}
	return nil
}

func (v *Validator) validateLLM() error {
	l := v.cfg.LLM
	if l.PrimaryModel == "" {
		return NewValidationError("llm.primary_model", fmt.Errorf("must not be empty"))
	}
	if l.FallbackModel == "" {
		return NewValidationError("llm.fallback_model", fmt.Errorf("must not be empty"))
	}
	if l.PrimaryAddr == "" {
		return NewValidationError("llm.primary_addr", fmt.Errorf("must not be empty"))
	}
	if l.FallbackAddr == "" {
		return NewValidationError("llm.fallback_addr", fmt.Errorf("must not be empty"))
	}
	if l.Timeout <= 0 {
		return NewValidationError("llm.timeout", fmt.Errorf("must be positive, got %v", l.Timeout))
	}
	if l.RecoveryInterval <= 0 {
		return NewValidationError("llm.recovery_interval", fmt.Errorf("must be positive, got %v", l.RecoveryInterval))
	}
	if len(l.RetryDelays) == 0 {
		return NewValidationError("llm.retry_delays", fmt.Errorf("must have at least one entry"))
	}
	return nil
}

func (v *Validator) validateMastery() error {
	m := v.cfg.Mastery
	if m.EWMAAlpha <= 0 || m.EWMAAlpha > 1 {
		return NewValidationError("mastery.ewma_alpha", fmt.Errorf("must be in (0, 1], got %v", m.EWMAAlpha))
	}
	if m.TimeDecayDaily <= 0 || m.TimeDecayDaily > 1 {
		return NewValidationError("mastery.time_decay_daily", fmt.Errorf("must be in (0, 1], got %v", m.TimeDecayDaily))
	}
	return nil
}

func (v *Validator) validatePool() error {
	p := v.cfg.Pool
	if p.KPerBand < 1 {
		return NewValidationError("pool.k_per_band", fmt.Errorf("must be at least 1, got %d", p.KPerBand))
	}
	if len(p.Ladder) == 0 {
		return NewValidationError("pool.ladder", fmt.Errorf("must have at least one rung"))
	}
	for i := 1; i < len(p.Ladder); i++ {
		if p.Ladder[i] <= p.Ladder[i-1] {
			return NewValidationError("pool.ladder", fmt.Errorf("must be strictly increasing, got %v", p.Ladder))
		}
	}
	if p.CooldownEasy < 0 || p.CooldownMedium < 0 || p.CooldownHard < 0 {
		return NewValidationError("pool.cooldown_*_days", fmt.Errorf("must be non-negative"))
	}
	return nil
}

func (v *Validator) validatePlanner() error {
	p := v.cfg.Planner
	if p.MaxPerSubcategoryStrict < 1 {
		return NewValidationError("planner.max_per_subcategory_strict", fmt.Errorf("must be at least 1, got %d", p.MaxPerSubcategoryStrict))
	}
	if p.MaxPerSubcategoryRelaxed < p.MaxPerSubcategoryStrict {
		return NewValidationError("planner.max_per_subcategory_relaxed", fmt.Errorf("must be >= strict cap %d, got %d", p.MaxPerSubcategoryStrict, p.MaxPerSubcategoryRelaxed))
	}
	if p.PhaseACutoff < 1 {
		return NewValidationError("planner.phase_a_cutoff", fmt.Errorf("must be at least 1, got %d", p.PhaseACutoff))
	}
	if p.PhaseBCutoff <= p.PhaseACutoff {
		return NewValidationError("planner.phase_b_cutoff", fmt.Errorf("must be > phase_a_cutoff %d, got %d", p.PhaseACutoff, p.PhaseBCutoff))
	}
	return nil
}
