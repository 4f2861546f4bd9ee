package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Pages.Calendar != "pages_py/calender.html" {
		t.Errorf("Pages.Calendar = %q", cfg.Pages.Calendar)
	}
	if cfg.Data.Events != "../CSV_info/UpcomingEvents.csv" {
		t.Errorf("Data.Events = %q", cfg.Data.Events)
	}
	if cfg.Images.FallbackImage != "sase_logo.png" {
		t.Errorf("Images.FallbackImage = %q", cfg.Images.FallbackImage)
	}
}

func TestLoad_OverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sitegen.yaml")
	content := `pages:
  landing: home.html
data:
  events: data/events.csv
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Pages.Landing != "home.html" {
		t.Errorf("Pages.Landing = %q, want home.html", cfg.Pages.Landing)
	}
	if cfg.Data.Events != "data/events.csv" {
		t.Errorf("Data.Events = %q, want data/events.csv", cfg.Data.Events)
	}
	// Untouched keys keep their defaults
	if cfg.Pages.Roster != "pages_py/meetTeam.html" {
		t.Errorf("Pages.Roster = %q, want default", cfg.Pages.Roster)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("pages: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestPath(t *testing.T) {
	cfg := Default()
	cfg.Root = "/srv/site"

	if got := cfg.Path("index.html"); got != "/srv/site/index.html" {
		t.Errorf("Path(index.html) = %q", got)
	}
	if got := cfg.Path("../CSV_info/a.csv"); got != "/srv/CSV_info/a.csv" {
		t.Errorf("Path(../CSV_info/a.csv) = %q", got)
	}
	if got := cfg.Path("/abs/file"); got != "/abs/file" {
		t.Errorf("Path(/abs/file) = %q", got)
	}
}
