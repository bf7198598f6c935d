package rules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleYAML = `
description: tenant overrides
rules:
  - process: civil
    act: contestação
    duration: 15
    unit: business_days
  - process: criminal
    act: apelação
    duration: 5
    unit: calendar_days
party_types:
  - party: fazenda_publica
    multiplier: 2
  - party: curador_especial
    multiplier: 1
    extra_days: 5
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	rule, ok := cfg.ResolveRule("civil", "contestação")
	if !ok || rule.Duration != 15 || rule.Unit != UnitBusinessDays {
		t.Errorf("civil/contestação = (%+v, %v)", rule, ok)
	}
	adj := cfg.ResolveAdjustment("curador_especial")
	if adj.Multiplier != 1 || adj.ExtraDays != 5 {
		t.Errorf("curador_especial = %+v, want multiplier 1 extra_days 5", adj)
	}
}

func TestParseConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			"missing process",
			"rules:\n  - act: contestação\n    duration: 15\n    unit: business_days\n",
			"process and act are required",
		},
		{
			"missing act",
			"rules:\n  - process: civil\n    duration: 15\n    unit: business_days\n",
			"process and act are required",
		},
		{
			"zero duration",
			"rules:\n  - process: civil\n    act: contestação\n    duration: 0\n    unit: business_days\n",
			"duration must be positive",
		},
		{
			"unknown unit",
			"rules:\n  - process: civil\n    act: contestação\n    duration: 15\n    unit: weeks\n",
			"unknown unit",
		},
		{
			"missing party",
			"party_types:\n  - multiplier: 2\n",
			"party is required",
		},
		{
			"multiplier below one",
			"party_types:\n  - party: fazenda_publica\n    multiplier: 0.5\n",
			"multiplier must be at least 1",
		},
		{
			"negative extra days",
			"party_types:\n  - party: fazenda_publica\n    multiplier: 1\n    extra_days: -1\n",
			"extra_days cannot be negative",
		},
		{
			"broken yaml",
			"rules: [",
			"parsing rule configuration",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tc.wantMsg)
			}
		})
	}
}

func TestMarshalConfigRoundTrip(t *testing.T) {
	original := DefaultConfig()
	data, err := MarshalConfig(original)
	if err != nil {
		t.Fatalf("MarshalConfig: %v", err)
	}

	restored, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig of marshaled output: %v", err)
	}
	if len(restored.Rules()) != len(original.Rules()) {
		t.Errorf("rule count changed: %d vs %d", len(restored.Rules()), len(original.Rules()))
	}
	rule, ok := restored.ResolveRule("labor", "recurso ordinário")
	if !ok || rule.Duration != 8 {
		t.Errorf("labor/recurso ordinário after round trip = (%+v, %v)", rule, ok)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if _, ok := cfg.ResolveRule("criminal", "apelação"); !ok {
		t.Error("criminal/apelação not found in loaded config")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestProviderReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	provider, err := NewProviderFromFile(path)
	if err != nil {
		t.Fatalf("NewProviderFromFile: %v", err)
	}

	before := provider.Config()
	if rule, ok := before.ResolveRule("civil", "contestação"); !ok || rule.Duration != 15 {
		t.Fatalf("initial snapshot = (%+v, %v)", rule, ok)
	}

	updated := strings.Replace(sampleYAML, "duration: 15", "duration: 30", 1)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := provider.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	after := provider.Config()
	if rule, ok := after.ResolveRule("civil", "contestação"); !ok || rule.Duration != 30 {
		t.Errorf("reloaded snapshot = (%+v, %v), want duration 30", rule, ok)
	}
	// The old snapshot stays intact for callers still holding it.
	if rule, _ := before.ResolveRule("civil", "contestação"); rule.Duration != 15 {
		t.Errorf("old snapshot mutated: duration = %d", rule.Duration)
	}
}

func TestProviderReloadKeepsSnapshotOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	provider, err := NewProviderFromFile(path)
	if err != nil {
		t.Fatalf("NewProviderFromFile: %v", err)
	}

	if err := os.WriteFile(path, []byte("rules: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := provider.Reload(); err == nil {
		t.Fatal("expected Reload to fail on broken YAML")
	}

	if _, ok := provider.Config().ResolveRule("civil", "contestação"); !ok {
		t.Error("previous snapshot lost after failed reload")
	}
}

func TestProviderWithoutFileCannotReload(t *testing.T) {
	provider := NewProvider(DefaultConfig())
	if err := provider.Reload(); err == nil {
		t.Fatal("expected Reload without a backing file to fail")
	}
	if err := provider.Watch(); err == nil {
		t.Fatal("expected Watch without a backing file to fail")
	}
}
