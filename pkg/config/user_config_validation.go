package config

import (
	"fmt"

	"github.com/jesseduffield/pathcheck/pkg/inputs"
	"github.com/jesseduffield/pathcheck/pkg/utils"
)

// Validate validates the user config
func (config *UserConfig) Validate() error {
	if _, err := inputs.ParseKind(config.Inspect.Kind); err != nil {
		return fmt.Errorf("%s for 'inspect.kind'", err.Error())
	}

	for _, key := range config.Output.HeaderColor {
		if !utils.IsValidColorName(key) {
			return fmt.Errorf("Unrecognized color '%s' for 'output.headerColor'", key)
		}
	}

	return nil
}
