package config

import (
	"os"
	"path/filepath"

	"github.com/OpenPeeDeeP/xdg"
	"github.com/imdario/mergo"
	"github.com/jesseduffield/pathcheck/pkg/inputs"
	yaml "github.com/jesseduffield/yaml"
)

const configFilename = "config.yml"

// AppConfig contains the base configuration fields required for pathcheck.
type AppConfig struct {
	Debug       bool   `long:"debug" env:"DEBUG" default:"false"`
	Version     string `long:"version" env:"VERSION" default:"unversioned"`
	Commit      string `long:"commit" env:"COMMIT"`
	BuildDate   string `long:"build-date" env:"BUILD_DATE"`
	Name        string `long:"name" env:"NAME" default:"pathcheck"`
	BuildSource string `long:"build-source" env:"BUILD_SOURCE" default:""`
	UserConfig  *UserConfig
	ConfigDir   string

	// WorkDir is the directory relative input paths are resolved against. It
	// is looked up once at startup and threaded through from here.
	WorkDir string
}

// NewAppConfig makes a new app config
func NewAppConfig(name, version, commit, date string, buildSource string, debuggingFlag bool, workDir string) (*AppConfig, error) {
	configDir, err := findOrCreateConfigDir(name)
	if err != nil {
		return nil, err
	}

	userConfig, err := loadUserConfigWithDefaults(configDir)
	if err != nil {
		return nil, err
	}

	appConfig := &AppConfig{
		Name:        name,
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		Debug:       debuggingFlag || os.Getenv("DEBUG") == "TRUE",
		BuildSource: buildSource,
		UserConfig:  userConfig,
		ConfigDir:   configDir,
		WorkDir:     workDir,
	}

	return appConfig, nil
}

func findOrCreateConfigDir(projectName string) (string, error) {
	folder := os.Getenv("CONFIG_DIR")
	if folder == "" {
		folder = xdg.New("jesseduffield", projectName).ConfigHome()
	}

	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", err
	}

	return folder, nil
}

func loadUserConfigWithDefaults(configDir string) (*UserConfig, error) {
	config := GetDefaultConfig()

	return loadUserConfig(configDir, &config)
}

// loadUserConfig creates config.yml if it's not there yet and reads it on top
// of base. We don't stat the file first: the create-or-open is the check.
func loadUserConfig(configDir string, base *UserConfig) (*UserConfig, error) {
	validator := inputs.NewValidator(nil, configDir)

	if err := validator.EnsureFile(configFilename, 0o644); err != nil {
		return nil, err
	}

	content, err := validator.ReadFile(configFilename)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(content, base); err != nil {
		return nil, err
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}

	return base, nil
}

// ApplyOverrides layers command line options on top of the loaded user config.
// Zero values in overrides are ignored, so a flag that was not given never
// clobbers config.yml
func (c *AppConfig) ApplyOverrides(overrides UserConfig) error {
	if err := mergo.Merge(c.UserConfig, overrides, mergo.WithOverride); err != nil {
		return err
	}
	return c.UserConfig.Validate()
}

// ConfigFilename returns the filename of the current config file
func (c *AppConfig) ConfigFilename() string {
	return filepath.Join(c.ConfigDir, configFilename)
}
