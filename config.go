package deptscrape

import "time"

// StoryblokConfig holds the CMS-side tunables: content type, field
// names, and the folder path stories are filed under. Credentials are
// not configuration; they come from the environment.
type StoryblokConfig struct {
	BaseURL     string   `yaml:"base_url"`
	ContentType string   `yaml:"content_type"`
	TitleField  string   `yaml:"title_field"`
	FolderPath  []string `yaml:"folder_path"`
}

// Config is the immutable set of process-wide tunables, threaded
// explicitly through constructors. No hidden global state.
type Config struct {
	// RequestDelay is the pause between successive fetches.
	RequestDelay time.Duration `yaml:"request_delay"`

	// FetchTimeout bounds a single HTTP fetch.
	FetchTimeout time.Duration `yaml:"fetch_timeout"`

	UserAgent string `yaml:"user_agent"`

	// SourceHost is the host relative to which external links are
	// classified. A link whose host contains this value is internal.
	SourceHost string `yaml:"source_host"`

	// ExcludedSections lists text fragments marking boilerplate
	// paragraphs that must not count as body content.
	ExcludedSections []string `yaml:"excluded_sections"`

	// OutputBase is the directory run folders are created under.
	OutputBase string `yaml:"output_base"`

	Storyblok StoryblokConfig `yaml:"storyblok"`
}

// DefaultConfig returns the built-in tunables. A YAML config file, if
// provided, is overlaid on top of these.
func DefaultConfig() Config {
	return Config{
		RequestDelay: 2 * time.Second,
		FetchTimeout: 10 * time.Second,
		UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0.0.0 Safari/537.36",
		SourceHost:   "aku.edu",
		ExcludedSections: []string{
			"Resources and Information",
			"Quick Links",
			"Website Policies",
			"© The Aga Khan University Hospital",
		},
		OutputBase: ".",
		Storyblok: StoryblokConfig{
			BaseURL:     "https://mapi.storyblok.com/v1",
			ContentType: "health_and_service",
			TitleField:  "title",
			FolderPath:  []string{"Automation", "health-services"},
		},
	}
}
