package detect

import "testing"

func TestFromPathAndContent(t *testing.T) {
	cases := []struct {
		name string
		path string
		data string
		want string
	}{
		{name: "typescript", path: "src/app.ts", want: "typescript"},
		{name: "tsx", path: "src/App.tsx", want: "typescriptreact"},
		{name: "python", path: "tool.py", want: "python"},
		{name: "csharp", path: "Program.cs", want: "csharp"},
		{name: "basename", path: "sub/Gemfile", want: "ruby"},
		{name: "shebang", path: "bin/deploy", data: "#!/usr/bin/env python3\n", want: "python"},
		// "pwsh" contains "sh"; matching order must prefer the
		// specific interpreter.
		{name: "shebang pwsh", path: "bin/setup", data: "#!/usr/bin/pwsh\n", want: "powershell"},
		{name: "shebang bash", path: "bin/run", data: "#!/bin/bash\nset -eu\n", want: "shell"},
		{name: "unknown", path: "blob.dat", want: ""},
		{name: "upper ext", path: "NOTES.TXT", want: "plaintext"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromPathAndContent(tc.path, []byte(tc.data))
			if got != tc.want {
				t.Fatalf("FromPathAndContent(%q): got %q want %q", tc.path, got, tc.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"TS":     "typescript",
		" c# ":   "csharp",
		"Python": "python",
		"":       "",
		"zig":    "zig",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q): got %q want %q", in, got, want)
		}
	}
}
