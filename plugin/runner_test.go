package plugin

import (
	"errors"
	"reflect"
	"testing"

	"github.com/flatlint/flatlint-plugin-sdk/flatlint"
)

func TestMemoryRunner_WalkFilesSorted(t *testing.T) {
	runner := newMemoryRunner(map[string][]byte{
		"zeta.js":  nil,
		"alpha.js": nil,
		"mid.js":   nil,
	}, nil)

	var visited []string
	err := runner.WalkFiles(func(path string) error {
		visited = append(visited, path)
		return nil
	})
	if err != nil {
		t.Fatalf("WalkFiles error = %v", err)
	}

	want := []string{"alpha.js", "mid.js", "zeta.js"}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("visited = %v, want %v", visited, want)
	}
}

func TestMemoryRunner_WalkFilesStopsOnError(t *testing.T) {
	runner := newMemoryRunner(map[string][]byte{"a.js": nil, "b.js": nil}, nil)

	sentinel := errors.New("stop")
	var count int
	err := runner.WalkFiles(func(string) error {
		count++
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Errorf("WalkFiles error = %v, want sentinel", err)
	}
	if count != 1 {
		t.Errorf("walk visited %d files after error, want 1", count)
	}
}

func TestMemoryRunner_FileContent(t *testing.T) {
	runner := newMemoryRunner(map[string][]byte{"app.js": []byte("let x")}, nil)

	content, err := runner.FileContent("app.js")
	if err != nil {
		t.Fatalf("FileContent error = %v", err)
	}
	if string(content) != "let x" {
		t.Errorf("FileContent = %q, want %q", content, "let x")
	}

	if _, err := runner.FileContent("missing.js"); err == nil {
		t.Error("FileContent of unknown file should fail")
	}
}

func TestMemoryRunner_DecodeRuleOptions(t *testing.T) {
	config := &flatlint.Config{
		Rules: map[string]*flatlint.RuleConfig{
			"max-len": {
				Name:    "max-len",
				Enabled: true,
				Options: []any{map[string]any{"code": 120.0, "ignoreUrls": true}},
			},
		},
	}
	runner := newMemoryRunner(nil, config)

	var opts struct {
		Code       int  `json:"code"`
		IgnoreURLs bool `json:"ignoreUrls"`
	}
	if err := runner.DecodeRuleOptions("max-len", &opts); err != nil {
		t.Fatalf("DecodeRuleOptions error = %v", err)
	}
	if opts.Code != 120 || !opts.IgnoreURLs {
		t.Errorf("opts = %+v, want code=120 ignoreUrls=true", opts)
	}
}

func TestMemoryRunner_DecodeRuleOptionsNoConfig(t *testing.T) {
	runner := newMemoryRunner(nil, nil)

	opts := struct {
		Code int `json:"code"`
	}{Code: 42}
	if err := runner.DecodeRuleOptions("max-len", &opts); err != nil {
		t.Fatalf("DecodeRuleOptions error = %v", err)
	}
	if opts.Code != 42 {
		t.Errorf("target modified without options: %+v", opts)
	}
}
