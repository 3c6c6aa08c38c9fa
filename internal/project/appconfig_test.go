package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/piwi3910/FurniProfit/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.BusinessName = "Muebles Quispe"
	cfg.Currency = "$"
	cfg.Theme = "light"
	cfg.DefaultInput.Quantity = 3
	cfg.DefaultInput.DailyWage = decimal.RequireFromString("85.50")
	cfg.DefaultInput.PricingMode = model.PricingFixedProfit
	cfg.DefaultInput.PricingParam = decimal.NewFromInt(60)

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.BusinessName != "Muebles Quispe" {
		t.Errorf("expected BusinessName=Muebles Quispe, got %s", loaded.BusinessName)
	}
	if loaded.Currency != "$" {
		t.Errorf("expected Currency=$, got %s", loaded.Currency)
	}
	if loaded.Theme != "light" {
		t.Errorf("expected Theme=light, got %s", loaded.Theme)
	}
	if !loaded.DefaultInput.Equal(cfg.DefaultInput) {
		t.Errorf("default input did not round-trip: got %+v", loaded.DefaultInput)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.Currency != defaults.Currency {
		t.Errorf("expected default currency %q, got %q", defaults.Currency, cfg.Currency)
	}
	if !cfg.DefaultInput.Equal(model.DefaultInput()) {
		t.Errorf("expected default input, got %+v", cfg.DefaultInput)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLoadAppConfigUnknownPricingMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	data := []byte(`{"default_input":{"quantity":2,"total_days":1,"pricing_mode":"CHEAPEST"}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected error for unknown pricing mode, got nil")
	}
}

func TestLoadAppConfigPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	// Only the business name is set; everything else comes from defaults
	data := []byte(`{"business_name":"Taller Ruiz","currency":"","default_input":{"quantity":0}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.BusinessName != "Taller Ruiz" {
		t.Errorf("expected business name to load, got %q", cfg.BusinessName)
	}
	if cfg.Currency != "S/" {
		t.Errorf("blank currency should fall back to S/, got %q", cfg.Currency)
	}
	if cfg.DefaultInput.Quantity != 1 {
		t.Errorf("invalid default input should be reset, got quantity %d", cfg.DefaultInput.Quantity)
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "config.json")

	cfg := model.DefaultAppConfig()
	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}
