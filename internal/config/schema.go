package config

// Config holds gdtriage configuration.
// Stored at: ~/.gdtriage/config.yaml
type Config struct {
	Drive      DriveCfg      `mapstructure:"drive" yaml:"drive"`
	Classifier ClassifierCfg `mapstructure:"classifier" yaml:"classifier"`
	Triage     TriageCfg     `mapstructure:"triage" yaml:"triage"`
}

// DriveCfg configures access to Google Drive.
type DriveCfg struct {
	CredentialsFile string `mapstructure:"credentials_file" yaml:"credentials_file"` // OAuth client secrets (default: ~/.gdtriage/credentials.json)
	TokenFile       string `mapstructure:"token_file" yaml:"token_file"`             // Cached OAuth token (default: ~/.gdtriage/token.json)
}

// ClassifierCfg configures the OpenAI title classifier.
type ClassifierCfg struct {
	APIKey         string `mapstructure:"api_key" yaml:"api_key"`                 // API key (supports ${ENV_VAR} syntax)
	Model          string `mapstructure:"model" yaml:"model"`                     // Model name
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"` // HTTP timeout
}

// TriageCfg tunes the triage workflows.
type TriageCfg struct {
	Categories       []string `mapstructure:"categories" yaml:"categories"`                 // Category vocabulary for sorting
	FallbackCategory string   `mapstructure:"fallback_category" yaml:"fallback_category"`   // Reserved label for unclassifiable titles
	ParentFolder     string   `mapstructure:"parent_folder" yaml:"parent_folder"`           // Optional Drive folder id holding category folders
	TitleCharLimit   int      `mapstructure:"title_char_limit" yaml:"title_char_limit"`     // First-line extraction bound
	TitleMaxLength   int      `mapstructure:"title_max_length" yaml:"title_max_length"`     // Sanitized title bound
	PauseMillis      int      `mapstructure:"pause_millis" yaml:"pause_millis"`             // Delay between documents
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Drive: DriveCfg{
			// Empty paths resolve to the home directory defaults at load time.
		},
		Classifier: ClassifierCfg{
			APIKey:         "${OPENAI_API_KEY}",
			Model:          "gpt-4o-mini",
			TimeoutSeconds: 30,
		},
		Triage: TriageCfg{
			Categories:       []string{"Poetry", "Work", "Personal", "Finance", "Recipes"},
			FallbackCategory: "Other",
			TitleCharLimit:   100,
			TitleMaxLength:   100,
			PauseMillis:      100,
		},
	}
}
