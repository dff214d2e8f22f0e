package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/deptscrape"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors deptscrape.Config with string durations so a
// YAML file can say "2s" rather than nanosecond counts. Only fields
// present in the file override the defaults.
type fileConfig struct {
	RequestDelay     string   `yaml:"request_delay"`
	FetchTimeout     string   `yaml:"fetch_timeout"`
	UserAgent        string   `yaml:"user_agent"`
	SourceHost       string   `yaml:"source_host"`
	ExcludedSections []string `yaml:"excluded_sections"`
	OutputBase       string   `yaml:"output_base"`
	Storyblok        struct {
		BaseURL     string   `yaml:"base_url"`
		ContentType string   `yaml:"content_type"`
		TitleField  string   `yaml:"title_field"`
		FolderPath  []string `yaml:"folder_path"`
	} `yaml:"storyblok"`
}

// loadConfig returns the built-in defaults, overlaid with the YAML
// file at path when one is given.
func loadConfig(path string) (deptscrape.Config, error) {
	cfg := deptscrape.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}

	if fc.RequestDelay != "" {
		d, err := time.ParseDuration(fc.RequestDelay)
		if err != nil {
			return cfg, fmt.Errorf("invalid request_delay: %w", err)
		}
		cfg.RequestDelay = d
	}
	if fc.FetchTimeout != "" {
		d, err := time.ParseDuration(fc.FetchTimeout)
		if err != nil {
			return cfg, fmt.Errorf("invalid fetch_timeout: %w", err)
		}
		cfg.FetchTimeout = d
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if fc.SourceHost != "" {
		cfg.SourceHost = fc.SourceHost
	}
	if fc.ExcludedSections != nil {
		cfg.ExcludedSections = fc.ExcludedSections
	}
	if fc.OutputBase != "" {
		cfg.OutputBase = fc.OutputBase
	}
	if fc.Storyblok.BaseURL != "" {
		cfg.Storyblok.BaseURL = fc.Storyblok.BaseURL
	}
	if fc.Storyblok.ContentType != "" {
		cfg.Storyblok.ContentType = fc.Storyblok.ContentType
	}
	if fc.Storyblok.TitleField != "" {
		cfg.Storyblok.TitleField = fc.Storyblok.TitleField
	}
	if fc.Storyblok.FolderPath != nil {
		cfg.Storyblok.FolderPath = fc.Storyblok.FolderPath
	}

	return cfg, nil
}
