package flatlint

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestECMAVersion_JSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ECMAVersion
		wantErr bool
	}{
		{"year", `2022`, ECMAVersion(2022), false},
		{"latest", `"latest"`, ECMAVersionLatest, false},
		{"bad token", `"newest"`, 0, true},
		{"bad type", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ECMAVersion
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestECMAVersion_JSONMarshal(t *testing.T) {
	data, err := json.Marshal(ECMAVersionLatest)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `"latest"` {
		t.Errorf("Marshal(latest) = %s, want %q", data, `"latest"`)
	}

	data, err = json.Marshal(ECMAVersion(2020))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `2020` {
		t.Errorf("Marshal(2020) = %s, want 2020", data)
	}
}

func TestGlobalAccess_JSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  GlobalAccess
	}{
		{"readonly token", `"readonly"`, GlobalReadonly},
		{"writable token", `"writable"`, GlobalWritable},
		{"off token", `"off"`, GlobalOff},
		{"legacy true", `true`, GlobalWritable},
		{"legacy false", `false`, GlobalReadonly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got GlobalAccess
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	var bad GlobalAccess
	if err := json.Unmarshal([]byte(`"everywhere"`), &bad); err == nil {
		t.Error("Unmarshal of bad access token should fail")
	}
}

func TestSourceType_Valid(t *testing.T) {
	for _, valid := range []SourceType{"", SourceTypeModule, SourceTypeScript, SourceTypeCommonJS} {
		if !valid.Valid() {
			t.Errorf("SourceType(%q).Valid() = false, want true", valid)
		}
	}
	if SourceType("esm").Valid() {
		t.Error(`SourceType("esm").Valid() = true, want false`)
	}
}

func TestLanguageOptions_IsZero(t *testing.T) {
	var nilOptions *LanguageOptions
	if !nilOptions.IsZero() {
		t.Error("nil options should be zero")
	}
	if !(&LanguageOptions{}).IsZero() {
		t.Error("empty options should be zero")
	}
	if (&LanguageOptions{Parser: "espree"}).IsZero() {
		t.Error("options with parser should not be zero")
	}
}

func TestLanguageOptions_Merge(t *testing.T) {
	base := LanguageOptions{
		Parser:      "espree",
		ECMAVersion: 2020,
		Globals:     map[string]GlobalAccess{"window": GlobalReadonly},
	}

	base.merge(&LanguageOptions{
		ECMAVersion: ECMAVersionLatest,
		SourceType:  SourceTypeModule,
		Globals:     map[string]GlobalAccess{"process": GlobalReadonly, "window": GlobalOff},
		EcmaFeatures: map[string]bool{
			"jsx": true,
		},
	})

	want := LanguageOptions{
		Parser:      "espree",
		ECMAVersion: ECMAVersionLatest,
		SourceType:  SourceTypeModule,
		Globals: map[string]GlobalAccess{
			"window":  GlobalOff,
			"process": GlobalReadonly,
		},
		EcmaFeatures: map[string]bool{"jsx": true},
	}
	if diff := cmp.Diff(want, base); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestLanguageOptions_MergeNil(t *testing.T) {
	base := LanguageOptions{Parser: "espree"}
	base.merge(nil)
	if base.Parser != "espree" {
		t.Errorf("Parser = %q, want espree", base.Parser)
	}
}

func TestLanguageOptions_JSONRoundTrip(t *testing.T) {
	input := `{
		"parser": "@typescript-eslint/parser",
		"ecmaVersion": "latest",
		"sourceType": "module",
		"globals": {"process": "readonly", "legacy": true},
		"ecmaFeatures": {"jsx": true}
	}`

	var got LanguageOptions
	if err := json.Unmarshal([]byte(input), &got); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	want := LanguageOptions{
		Parser:      "@typescript-eslint/parser",
		ECMAVersion: ECMAVersionLatest,
		SourceType:  SourceTypeModule,
		Globals: map[string]GlobalAccess{
			"process": GlobalReadonly,
			"legacy":  GlobalWritable,
		},
		EcmaFeatures: map[string]bool{"jsx": true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}
