package store

import (
	"fmt"

	"github.com/bornholm/effortcalc/internal/model"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of environment variables overriding the config file
const EnvPrefix = "EFFORTCALC"

type envOverrides struct {
	Persona    string  `envconfig:"PERSONA"`
	Policy     string  `envconfig:"POLICY"`
	FocusHours float64 `envconfig:"FOCUS_HOURS"`
}

// ApplyEnv overrides config values with EFFORTCALC_PERSONA, EFFORTCALC_POLICY
// and EFFORTCALC_FOCUS_HOURS when they are set
func ApplyEnv(config *model.Config) error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	if env.Persona != "" {
		role, err := model.ParseRole(env.Persona)
		if err != nil {
			return fmt.Errorf("%s_PERSONA: %w", EnvPrefix, err)
		}
		config.Persona = role
	}

	if env.Policy != "" {
		policy, err := model.ParseNonPositivePolicy(env.Policy)
		if err != nil {
			return fmt.Errorf("%s_POLICY: %w", EnvPrefix, err)
		}
		config.NonPositivePolicy = policy
	}

	if env.FocusHours != 0 {
		config.Defaults.FocusHoursPerDay = env.FocusHours
	}

	return nil
}
