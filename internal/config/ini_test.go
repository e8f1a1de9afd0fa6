package config

import "testing"

func TestExtractSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
		wantOK  bool
	}{
		{
			name:    "simple",
			content: "[dot]\nworship_suffix = BECAUSE I HONOR THE DOT\n",
			want:    "BECAUSE I HONOR THE DOT",
			wantOK:  true,
		},
		{
			name:    "other section shadowing",
			content: "[other]\nworship_suffix = WRONG\n[dot]\nworship_suffix = CORRECT\n",
			want:    "CORRECT",
			wantOK:  true,
		},
		{
			name:    "other section after dot",
			content: "[dot]\nworship_suffix = CORRECT\n[other]\nworship_suffix = WRONG\n",
			want:    "CORRECT",
			wantOK:  true,
		},
		{
			name:    "blank value is absent",
			content: "[dot]\nworship_suffix = \n",
			wantOK:  false,
		},
		{
			name:    "whitespace value is absent",
			content: "[dot]\nworship_suffix =    \t\n",
			wantOK:  false,
		},
		{
			name:    "comments and blank lines",
			content: "# c\n\n[dot]\n; c2\nworship_suffix = CUSTOM SUFFIX\n",
			want:    "CUSTOM SUFFIX",
			wantOK:  true,
		},
		{
			name:    "case-insensitive section and key",
			content: "[DOT]\nWorship_Suffix = LOUD\n",
			want:    "LOUD",
			wantOK:  true,
		},
		{
			name:    "section name padded",
			content: "[ dot ]\nworship_suffix = PADDED\n",
			want:    "PADDED",
			wantOK:  true,
		},
		{
			name:    "key outside any section",
			content: "worship_suffix = ORPHAN\n",
			wantOK:  false,
		},
		{
			name:    "missing key",
			content: "[dot]\nother = value\n",
			wantOK:  false,
		},
		{
			name:    "first match wins",
			content: "[dot]\nworship_suffix = FIRST\nworship_suffix = SECOND\n",
			want:    "FIRST",
			wantOK:  true,
		},
		{
			name:    "blank then value",
			content: "[dot]\nworship_suffix =\nworship_suffix = LATER\n",
			want:    "LATER",
			wantOK:  true,
		},
		{
			name:    "split at first equals",
			content: "[dot]\nworship_suffix = A = B\n",
			want:    "A = B",
			wantOK:  true,
		},
		{
			name:    "crlf line endings",
			content: "[dot]\r\nworship_suffix = WINDOWS\r\n",
			want:    "WINDOWS",
			wantOK:  true,
		},
		{
			name:    "line without equals ignored",
			content: "[dot]\njunk\nworship_suffix = OK\n",
			want:    "OK",
			wantOK:  true,
		},
		{
			name:    "empty content",
			content: "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ExtractSuffix(tt.content)
			if ok != tt.wantOK {
				t.Fatalf("ExtractSuffix() ok = %v, want %v (value %q)", ok, tt.wantOK, got)
			}
			if got != tt.want {
				t.Errorf("ExtractSuffix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtract_OtherKey(t *testing.T) {
	t.Parallel()

	content := "[dot]\nworship_suffix = S\n[user]\nname = Ada\n"
	got, ok := Extract(content, "user", "name")
	if !ok || got != "Ada" {
		t.Errorf("Extract(user, name) = %q, %v, want %q, true", got, ok, "Ada")
	}
}
