// Package config holds the file locations the generator reads from and writes to.
//
// Every path is relative to the working root passed on the command line (the
// site checkout). The defaults reproduce the layout the site has always used,
// so running without a config file needs no setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Pages lists the HTML documents that get regenerated in place.
type Pages struct {
	Calendar string `yaml:"calendar"`
	Roster   string `yaml:"roster"`
	Gallery  string `yaml:"gallery"`
	Landing  string `yaml:"landing"`
}

// Data lists the CSV sources.
type Data struct {
	Events        string `yaml:"events"`
	Board         string `yaml:"board"`
	Announcements string `yaml:"announcements"`
	Gallery       string `yaml:"gallery"`
}

// Images describes where pictures are found on disk and how pages link to them.
type Images struct {
	// CarouselDir is scanned for landing page slides.
	CarouselDir string `yaml:"carousel_dir"`
	// CarouselURL prefixes slide sources in index.html.
	CarouselURL string `yaml:"carousel_url"`
	// AnnouncementURL prefixes announcement pictures.
	AnnouncementURL string `yaml:"announcement_url"`
	// BoardURL is the root of the per-year headshot folders.
	BoardURL string `yaml:"board_url"`
	// GalleryDir holds one folder per gallery event, named after the event.
	// It doubles as the src prefix in gallery.html.
	GalleryDir string `yaml:"gallery_dir"`
	// FallbackDir and FallbackImage are used when an event has no pictures.
	FallbackDir   string `yaml:"fallback_dir"`
	FallbackImage string `yaml:"fallback_image"`
}

// Config is the top-level configuration.
type Config struct {
	Root   string `yaml:"-"`
	Pages  Pages  `yaml:"pages"`
	Data   Data   `yaml:"data"`
	Images Images `yaml:"images"`
}

// Default returns the standard site layout rooted at ".".
func Default() *Config {
	return &Config{
		Root: ".",
		Pages: Pages{
			Calendar: "pages_py/calender.html",
			Roster:   "pages_py/meetTeam.html",
			Gallery:  "pages_py/gallery.html",
			Landing:  "index.html",
		},
		Data: Data{
			Events:        "../CSV_info/UpcomingEvents.csv",
			Board:         "../CSV_info/CurrentBoard.csv",
			Announcements: "../CSV_info/Announcements.csv",
			Gallery:       "../CSV_info/GalleryEvents.csv",
		},
		Images: Images{
			CarouselDir:     "../images/Carousel",
			CarouselURL:     "images/Carousel",
			AnnouncementURL: "images/Announcements",
			BoardURL:        "../images/EBoard",
			GalleryDir:      "images/event_post",
			FallbackDir:     "../images",
			FallbackImage:   "sase_logo.png",
		},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default value. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Path resolves a configured location against the working root.
func (c *Config) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Root, rel)
}
