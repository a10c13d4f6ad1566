package config

// UserConfig holds all of the user-configurable options. The fields here are all in PascalCase but in your actual config.yml they'll be in camelCase. You can view the default config with `pathcheck --config`. Anything given on the command line takes precedence over what is in config.yml
type UserConfig struct {
	// Language is the language used for help text and report headers. One of "auto", "en" or "pl". "auto" asks the OS for the user's locale
	Language string `yaml:"language,omitempty"`

	// Inspect determines what we expect of each input and what we do when one can't be used
	Inspect InspectConfig `yaml:"inspect,omitempty"`

	// Output determines how results and errors are printed
	Output OutputConfig `yaml:"output,omitempty"`
}

// InspectConfig is for configuring how inputs are checked and used
type InspectConfig struct {
	// Kind is the kind of object every input must be. One of "any", "file" or "directory". This is checked when the input is opened, so it is enforced even if the path changes after we first looked at it
	Kind string `yaml:"kind,omitempty"`

	// FailFast stops processing at the first input that can't be used. By default we carry on and report all failures at the end
	FailFast bool `yaml:"failFast,omitempty"`

	// SkipPrecheck turns off the early pass over all inputs that runs before any of them is used. The early pass only exists so that an obviously wrong argument is reported before we start doing work; every input is checked again when it is used regardless
	SkipPrecheck bool `yaml:"skipPrecheck,omitempty"`

	// SkipLineCount stops us from reading regular files to count their lines, which can be slow for large files
	SkipLineCount bool `yaml:"skipLineCount,omitempty"`
}

// OutputConfig is for configuring what gets printed
type OutputConfig struct {
	// NoColor disables colors in the report
	NoColor bool `yaml:"noColor,omitempty"`

	// HeaderColor determines the color and attributes of the report header. Any of: default, black, red, green, yellow, blue, magenta, cyan, white, bold, underline
	HeaderColor []string `yaml:"headerColor,omitempty"`

	// Backtrace prints the stack trace of a top level error after the error message. You can also set PATHCHECK_BACKTRACE=1
	Backtrace bool `yaml:"backtrace,omitempty"`
}

// GetDefaultConfig returns the application default configuration
// NOTE (to contributors, not users): do not default a boolean to true, because false is the boolean zero value and this will be ignored when parsing the user's config
func GetDefaultConfig() UserConfig {
	return UserConfig{
		Language: "auto",
		Inspect: InspectConfig{
			Kind:          "any",
			FailFast:      false,
			SkipPrecheck:  false,
			SkipLineCount: false,
		},
		Output: OutputConfig{
			NoColor:     false,
			HeaderColor: []string{"blue", "bold"},
			Backtrace:   false,
		},
	}
}
