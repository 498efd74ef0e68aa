// Package config handles runtime configuration for the server,
// including defaults, environment overlay, and command-line flags.
package config

import (
	"flag"
	"os"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DBPath: path to the SQLite database file.
//   - AdminKey: bearer key for the moderation surface. Empty disables it.
//   - ArticlesURL: source feed for the published article catalog.
//   - AllowedOrigins: CORS origins allowed to call the API.
type Config struct {
	Addr           string
	DBPath         string
	AdminKey       string
	ArticlesURL    string
	AllowedOrigins []string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DBPath = "tat_social.db"
	c.AdminKey = ""
	c.ArticlesURL = "https://theagenttimes.com/api/articles.json"
	c.AllowedOrigins = []string{"*"}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}

// parseEnv overlays values from the environment:
//
//	PORT             bind port, applied as ":" + PORT
//	TAT_SOCIAL_DB    SQLite database path
//	TAT_ADMIN_KEY    moderation bearer key
//	TAT_ARTICLES_URL article feed URL
func parseEnv(config *Config) {
	if port := os.Getenv("PORT"); port != "" {
		config.Addr = ":" + port
	}
	if path := os.Getenv("TAT_SOCIAL_DB"); path != "" {
		config.DBPath = path
	}
	if key := os.Getenv("TAT_ADMIN_KEY"); key != "" {
		config.AdminKey = key
	}
	if feed := os.Getenv("TAT_ARTICLES_URL"); feed != "" {
		config.ArticlesURL = feed
	}
}

// parseFlags overlays selected Config fields from command-line flags.
//
//	-a string   address and port to run the server (e.g., ":8080")
//	-d string   SQLite database path
//	-f string   article feed URL
// Bad flags print usage and exit instead of panicking.
func parseFlags(config *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ExitOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DBPath, "d", config.DBPath, "SQLite database path")
	fs.StringVar(&config.ArticlesURL, "f", config.ArticlesURL, "article feed URL")

	_ = fs.Parse(args)
}
