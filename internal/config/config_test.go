package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/r-xue/auto-selfcal/internal/sensitivity"
)

// #region helpers

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// #endregion helpers

// #region load-tests

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
vis:
  - eb1.ms
  - eb2.ms
db_path: selfcal.db
casa_addr: localhost:50051
telescope: VLA
refant: ea05
robust: -0.5
rel_thresh_scaling: linear
amplitude_selfcal: true
delta_beam_thresh: 0.1
`)
	rc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rc.Vis) != 2 || rc.Vis[0] != "eb1.ms" {
		t.Errorf("vis not parsed: %v", rc.Vis)
	}
	if rc.Telescope != "VLA" || rc.Refant != "ea05" || rc.Robust != -0.5 {
		t.Errorf("fields not parsed: %+v", rc)
	}
	if !rc.AmplitudeSelfcal {
		t.Error("amplitude_selfcal not parsed")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := writeConfig(t, "vis: [unclosed")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

// #endregion load-tests

// #region validate-tests

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		rc   RunConfig
		ok   bool
	}{
		{"minimal", RunConfig{Vis: []string{"eb1.ms"}}, true},
		{"no vis", RunConfig{}, false},
		{"bad telescope", RunConfig{Vis: []string{"a.ms"}, Telescope: "GBT"}, false},
		{"bad scaling", RunConfig{Vis: []string{"a.ms"}, RelThreshScaling: "sqrt"}, false},
		{"bad applymode", RunConfig{Vis: []string{"a.ms"}, ApplyMode: "calverify"}, false},
		{"all valid", RunConfig{Vis: []string{"a.ms"}, Telescope: "ACA", RelThreshScaling: "loglinear", ApplyMode: "calonly"}, true},
	}
	for _, tc := range cases {
		err := tc.rc.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

// #endregion validate-tests

// #region to-selfcal-tests

func TestToSelfcal_Defaults(t *testing.T) {
	rc := RunConfig{Vis: []string{"eb1.ms"}}
	cfg := rc.ToSelfcal()

	if cfg.Telescope != sensitivity.TelescopeALMA {
		t.Errorf("expected ALMA default, got %v", cfg.Telescope)
	}
	if cfg.Robust != 0.5 || cfg.ApplyMode != "calflag" || cfg.RelThreshScaling != "log10" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Gate.DeltaBeamThresh != 0.05 || cfg.Gate.MinSNRToProceed != 3.0 {
		t.Errorf("gate defaults not applied: %+v", cfg.Gate)
	}
	// An absent spw_combine key keeps the default.
	if !cfg.Planner.SpwCombine {
		t.Error("spw combine default lost")
	}
}

func TestToSelfcal_SpwCombineDisabled(t *testing.T) {
	off := false
	rc := RunConfig{Vis: []string{"eb1.ms"}, SpwCombine: &off}
	if cfg := rc.ToSelfcal(); cfg.Planner.SpwCombine {
		t.Error("expected spw combine disabled")
	}
}

func TestToSelfcal_Overrides(t *testing.T) {
	rc := RunConfig{
		Vis:              []string{"eb1.ms"},
		Telescope:        "ACA",
		Refant:           "CM03",
		Robust:           2.0,
		ApplyMode:        "calonly",
		RelThreshScaling: "linear",
		NSolints:         6,
		AmplitudeSelfcal: true,
		DeltaBeamThresh:  0.1,
		MinSNR:           5.0,
		CheckAllSpws:     true,
	}
	cfg := rc.ToSelfcal()

	if cfg.Telescope != sensitivity.TelescopeACA {
		t.Errorf("telescope not overridden: %v", cfg.Telescope)
	}
	if cfg.Refant != "CM03" || cfg.Robust != 2.0 || cfg.ApplyMode != "calonly" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Planner.NSolints != 6 || !cfg.Planner.AmplitudeSelfcal {
		t.Errorf("planner overrides not applied: %+v", cfg.Planner)
	}
	if cfg.Gate.DeltaBeamThresh != 0.1 || cfg.Gate.MinSNRToProceed != 5.0 {
		t.Errorf("gate overrides not applied: %+v", cfg.Gate)
	}
	if !cfg.CheckAllSpws {
		t.Error("check_all_spws not applied")
	}
}

func TestFallbackAccessors(t *testing.T) {
	rc := RunConfig{}
	if got := rc.DBPathOr("selfcal.db"); got != "selfcal.db" {
		t.Errorf("expected fallback db path, got %q", got)
	}
	rc.DBPath = "custom.db"
	if got := rc.DBPathOr("selfcal.db"); got != "custom.db" {
		t.Errorf("expected configured db path, got %q", got)
	}
	if got := rc.CasaAddrOr("localhost:50051"); got != "localhost:50051" {
		t.Errorf("expected fallback addr, got %q", got)
	}
}

// #endregion to-selfcal-tests
