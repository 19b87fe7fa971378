package main

import (
	"encoding/json"
	"testing"
)

func TestMapCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		preset         string
		searchOnly     bool
		wantJSON       bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "linear size",
			args:        []string{"32"},
			wantContain: []string{"fl=0 sl=8", "32-32"},
		},
		{
			name:        "threshold and power of two",
			args:        []string{"64", "256"},
			wantContain: []string{"fl=1 sl=0", "fl=3 sl=0", "256-268"},
		},
		{
			name:        "unaligned rounds up",
			args:        []string{"13"},
			wantContain: []string{"13       16"},
		},
		{
			name:        "search skips partial subdivision",
			args:        []string{"260"},
			wantContain: []string{"fl=3 sl=1", "272-284"},
		},
		{
			name:           "search only",
			args:           []string{"260"},
			searchOnly:     true,
			wantContain:    []string{"SEARCH", "fl=3 sl=1"},
			wantNotContain: []string{"INSERT"},
		},
		{
			name:        "above max request has no search",
			args:        []string{"0xFFFC"},
			wantContain: []string{"fl=10 sl=15", " -"},
		},
		{
			name:        "coarse preset",
			args:        []string{"32"},
			preset:      "coarse",
			wantContain: []string{"fl=0 sl=4"},
		},
		{
			name:        "json",
			args:        []string{"32", "500"},
			wantJSON:    true,
			wantContain: []string{`"results"`, `"search_class"`},
		},
		{
			name:    "bad size",
			args:    []string{"seventy"},
			wantErr: true,
		},
		{
			name:    "size beyond 16 bits",
			args:    []string{"70000"},
			wantErr: true,
		},
		{
			name:    "unknown preset",
			args:    []string{"32"},
			preset:  "huge",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON
			mapSearchOnly = tt.searchOnly
			if tt.preset != "" {
				presetName = tt.preset
			}

			output, err := captureOutput(t, func() error {
				return runMap(tt.args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runMap() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestMapJSONValues(t *testing.T) {
	resetFlags()
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runMap([]string{"500"})
	})
	if err != nil {
		t.Fatalf("runMap: %v", err)
	}

	var got struct {
		Results []MapResult `json:"results"`
	}
	if err := json.Unmarshal([]byte(output), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got.Results))
	}
	r := got.Results[0]
	if r.Insert == nil || *r.Insert != (IndexJSON{FL: 3, SL: 15}) {
		t.Errorf("insert = %+v, want fl=3 sl=15", r.Insert)
	}
	if r.Search == nil || *r.Search != (IndexJSON{FL: 4, SL: 0}) {
		t.Errorf("search = %+v, want fl=4 sl=0", r.Search)
	}
	if r.Class == nil || r.Class.Min < 500 {
		t.Errorf("search class %+v must start at or above the request", r.Class)
	}
}

func TestMapCustomParams(t *testing.T) {
	resetFlags()
	alignLog2 = 3
	sliLog2 = 3

	output, err := captureOutput(t, func() error {
		return runMap([]string{"32"})
	})
	if err != nil {
		t.Fatalf("runMap: %v", err)
	}
	assertContains(t, output, []string{"fl=0 sl=4"})

	resetFlags()
	sliLog2 = 9
	if _, err := captureOutput(t, func() error { return runMap([]string{"32"}) }); err == nil {
		t.Errorf("expected error for sli-log2 9")
	}
}
