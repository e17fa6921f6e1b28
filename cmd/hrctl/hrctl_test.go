package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"hr-assistant/internal/model"
	"hr-assistant/internal/report"
)

func TestParseRequirements(t *testing.T) {
	got := parseRequirements(map[string]string{
		"headcount": "20",
		"remote":    "true",
		"industry":  "fintech",
	})
	want := map[string]any{"headcount": 20.0, "remote": true, "industry": "fintech"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseRequirements = %#v, want %#v", got, want)
	}
	if parseRequirements(nil) != nil {
		t.Fatal("empty requirements should be nil")
	}
}

func TestParseFocus(t *testing.T) {
	got, err := parseFocus(map[string]string{"cost": "2", "risk": "0.5"})
	if err != nil {
		t.Fatalf("parseFocus: %v", err)
	}
	if !reflect.DeepEqual(got, map[string]float64{"cost": 2, "risk": 0.5}) {
		t.Fatalf("parseFocus = %v", got)
	}
	if _, err := parseFocus(map[string]string{"cost": "high"}); err == nil {
		t.Fatal("expected error for non-numeric weight")
	}
}

func TestReadEntities(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{"valid", `[{"id":"tw-tax","type":"tax","country_id":"TW","name":"稅制","properties":{"income_tax_rates":{"low":5}}}]`, 1, false},
		{"empty array", `[]`, 0, false},
		{"missing country", `[{"id":"x","type":"law"}]`, 0, true},
		{"unknown type", `[{"id":"x","type":"visa","country_id":"TW"}]`, 0, true},
		{"not json", `nope`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readEntities(strings.NewReader(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != tt.want {
				t.Fatalf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestWriteDocument(t *testing.T) {
	c := &model.CountryComparison{Countries: []string{"TW"}, Recommendation: "<ok>"}

	var buf bytes.Buffer
	if err := writeDocument(&buf, c, "# 標題", report.FormatJSON); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(buf.String(), `"<ok>"`) {
		t.Fatalf("json output escaped HTML: %s", buf.String())
	}

	buf.Reset()
	if err := writeDocument(&buf, c, "# 標題", report.FormatHTML); err != nil {
		t.Fatalf("html: %v", err)
	}
	if !strings.Contains(buf.String(), "<h1>標題</h1>") {
		t.Fatalf("html output = %s", buf.String())
	}
}

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"ingest", "seed", "route", "compare", "strategy"} {
		if !names[want] {
			t.Errorf("missing subcommand %s", want)
		}
	}
}
