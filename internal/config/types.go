// SPDX-License-Identifier: MPL-2.0

package config

// DefaultSpinner is the spinner shown while packaging unless configured otherwise.
const DefaultSpinner = "vlp"

type (
	// Config holds the application configuration.
	Config struct {
		// ZipPath is an explicit zip executable. It is tried before the
		// default probes and skipped when it does not exist.
		ZipPath string `json:"zip_path" mapstructure:"zip_path"`
		// OutputDir receives the packaged artifact. Empty means the parent
		// of the input directory.
		OutputDir string `json:"output_dir" mapstructure:"output_dir"`
		// UI configures terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		// Verbose enables debug logging and full error chains.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// Spinner names the progress spinner style.
		Spinner string `json:"spinner" mapstructure:"spinner"`
		// PauseOnError waits for Enter before exiting after a failure.
		PauseOnError bool `json:"pause_on_error" mapstructure:"pause_on_error"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Spinner: DefaultSpinner,
		},
	}
}
