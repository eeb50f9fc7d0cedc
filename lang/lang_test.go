package lang

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want ID
	}{
		{"go", Go},
		{"golang", Go},
		{"js", JavaScript},
		{"jsx", JavaScript},
		{"ts", TypeScript},
		{"py", Python},
		{"rs", Rust},
		{"sh", Bash},
		{"shell", Bash},
		{"yml", YAML},
		{"c++", CPP},
		{"htm", HTML},
		{"  Rust  ", Rust},
		{"JSON", JSON},
		{"txt", Plain},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_UnknownPassesThrough(t *testing.T) {
	if got := Normalize("Klingon"); got != ID("klingon") {
		t.Fatalf("Normalize(Klingon) = %q, want klingon", got)
	}
}

func TestDetect(t *testing.T) {
	cases := []struct {
		path string
		want ID
	}{
		{"main.go", Go},
		{"src/lib.rs", Rust},
		{"app.tsx", TSX},
		{"script.mjs", JavaScript},
		{"index.html", HTML},
		{"style.css", CSS},
		{"config.yml", YAML},
		{"Cargo.toml", TOML},
		{"go.mod", Go},
		{".zshrc", Bash},
		{"README", Plain},
		{"notes.md", Plain},
	}
	for _, tc := range cases {
		if got := Detect(tc.path); got != tc.want {
			t.Errorf("Detect(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestDetectWithShebang(t *testing.T) {
	cases := []struct {
		path      string
		firstLine string
		want      ID
	}{
		{"run", "#!/usr/bin/env python3", Python},
		{"run", "#!/bin/bash", Bash},
		{"run", "#!/bin/sh", Bash},
		{"run", "#!/usr/bin/env node", JavaScript},
		{"run", "plain text", Plain},
		{"main.go", "#!/bin/bash", Go},
	}
	for _, tc := range cases {
		if got := DetectWithShebang(tc.path, tc.firstLine); got != tc.want {
			t.Errorf("DetectWithShebang(%q, %q) = %q, want %q", tc.path, tc.firstLine, got, tc.want)
		}
	}
}
