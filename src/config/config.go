// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// config.go - Static tables and settings for the supermarket bot. Defaults
// are built in; a YAML file and environment variables can override them.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/christimahu/dev/supermarket-bot/src/catalog"
)

// Export formats understood by the exporter.
const (
	FormatPDF  = "pdf"
	FormatText = "text"
)

// Config holds everything the bot reads at start-up. It is treated as
// read-only once loaded.
type Config struct {
	Bot       BotConfig       `yaml:"bot"`
	Responses ResponsesConfig `yaml:"responses"`
	Contacts  []Contact       `yaml:"contacts"`
	Catalog   []CatalogEntry  `yaml:"catalog"`
	Export    ExportConfig    `yaml:"export"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// BotConfig configures the dialogue itself.
type BotConfig struct {
	Name         string   `yaml:"name"`
	Prompt       string   `yaml:"prompt"`
	Greetings    []string `yaml:"greetings"`
	ExitCommands []string `yaml:"exit_commands"`
}

// ResponsesConfig holds the canned reply for each fixed intent.
type ResponsesConfig struct {
	StoreHours          string `yaml:"store_hours"`
	SpecialOffers       string `yaml:"special_offers"`
	StoreLocation       string `yaml:"store_location"`
	ProductAvailability string `yaml:"product_availability"`
	Thanks              string `yaml:"thanks"`
	Goodbye             string `yaml:"goodbye"`
	ContactFallback     string `yaml:"contact_fallback"`
}

// Contact is one department in the contact directory. Key is the substring
// searched for in the shopper's message; Name is how the reply refers to it.
type Contact struct {
	Key   string `yaml:"key"`
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
}

// CatalogEntry maps an item to its aisle and shelf.
type CatalogEntry struct {
	Item  string `yaml:"item"`
	Place string `yaml:"place"`
}

// ExportConfig configures the shopping list document.
type ExportConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // pdf, text
	Title  string `yaml:"title"`
}

// LoggingConfig configures diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the built-in store tables.
func DefaultConfig() *Config {
	return &Config{
		Bot: BotConfig{
			Name:   "Supermarket Bot",
			Prompt: "What do you need today? (Separate items with commas or type 'exit' to finish)",
			Greetings: []string{
				"Hello! How can I assist you with your shopping today?",
				"Hi there! Need help finding something in the supermarket?",
				"Hey! I'm here to help you locate items in the supermarket.",
			},
			ExitCommands: []string{"exit", "quit", "bye", "goodbye", "leave", "stop"},
		},

		Responses: ResponsesConfig{
			StoreHours:          "Our store is open from 8 AM to 10 PM, Monday to Sunday.",
			SpecialOffers:       "We have various items on sale this week! Check the flyer at the entrance for the latest deals.",
			StoreLocation:       "We are located at 123 Main Street, downtown. You can't miss us!",
			ProductAvailability: "Let me check the stock for you. Please wait a moment.",
			Thanks:              "You're welcome! Is there anything else I can help you with today?",
			Goodbye:             "Thank you for using Supermarket Bot. Have a great day!",
			ContactFallback:     "Sorry, I couldn't find the contact information you're looking for. Please check with our staff.",
		},

		// Order matters: the first key found in the message wins.
		Contacts: []Contact{
			{Key: "customer service", Name: "customer service", Phone: "123-456-7890"},
			{Key: "grocery department", Name: "the grocery department", Phone: "987-654-3210"},
			{Key: "bakery", Name: "the bakery", Phone: "555-555-5555"},
			{Key: "pharmacy", Name: "the pharmacy", Phone: "444-444-4444"},
		},

		Catalog: []CatalogEntry{
			{Item: "bread", Place: "Aisle 1, Shelf B"},
			{Item: "milk", Place: "Aisle 2, Shelf A"},
			{Item: "eggs", Place: "Aisle 2, Shelf B"},
			{Item: "cheese", Place: "Aisle 3, Shelf C"},
			{Item: "vegetables", Place: "Aisle 1, Shelf D"},
			{Item: "fruits", Place: "Aisle 1, Shelf E"},
			{Item: "snacks", Place: "Aisle 3, Shelf A"},
		},

		Export: ExportConfig{
			Path:   "shopping_list.pdf",
			Format: FormatPDF,
			Title:  "Supermarket Shopping List",
		},

		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults. A
// missing file is not an error. Environment overrides are applied last; a
// .env file in the working directory is honoured if present.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// A missing .env just means plain environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SUPERBOT_OUTPUT"); v != "" {
		c.Export.Path = v
	}
	if v := os.Getenv("SUPERBOT_FORMAT"); v != "" {
		c.Export.Format = strings.ToLower(v)
	}
	if v := os.Getenv("SUPERBOT_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}

// Validate checks the tables for values the bot cannot work with.
func (c *Config) Validate() error {
	if len(c.Bot.Greetings) == 0 {
		return fmt.Errorf("bot.greetings must not be empty")
	}
	if len(c.Bot.ExitCommands) == 0 {
		return fmt.Errorf("bot.exit_commands must not be empty")
	}
	if c.Responses.Goodbye == "" {
		return fmt.Errorf("responses.goodbye must not be empty")
	}
	for i, ct := range c.Contacts {
		if ct.Key == "" || ct.Phone == "" {
			return fmt.Errorf("contacts[%d]: key and phone are required", i)
		}
		if ct.Key != strings.ToLower(ct.Key) {
			return fmt.Errorf("contacts[%d]: key %q must be lowercase", i, ct.Key)
		}
	}
	for i, e := range c.Catalog {
		if e.Item == "" {
			return fmt.Errorf("catalog[%d]: item name is required", i)
		}
		// Input is lowercased before lookup, so an uppercase key is unreachable.
		if e.Item != strings.ToLower(e.Item) {
			return fmt.Errorf("catalog[%d]: item %q must be lowercase", i, e.Item)
		}
	}
	switch c.Export.Format {
	case FormatPDF, FormatText:
	default:
		return fmt.Errorf("export.format %q is not one of %q, %q", c.Export.Format, FormatPDF, FormatText)
	}
	if c.Export.Path == "" {
		return fmt.Errorf("export.path must not be empty")
	}
	return nil
}

// CatalogEntries converts the configured catalog for catalog.New.
func (c *Config) CatalogEntries() []catalog.Entry {
	out := make([]catalog.Entry, len(c.Catalog))
	for i, e := range c.Catalog {
		out[i] = catalog.Entry{Item: e.Item, Place: e.Place}
	}
	return out
}
