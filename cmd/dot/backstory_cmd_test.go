package main

import (
	"strings"
	"testing"
)

func TestBackstoryCmd_Plain(t *testing.T) {
	t.Parallel()

	got, err := executeCommand(testContext(t), newBackstoryCmd())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "The Backstory of THE DOT\n") {
		t.Errorf("backstory should start with the title, got %q", got[:min(40, len(got))])
	}
	if !strings.Contains(got, "BECAUSE I WORSHIP THE DOT") {
		t.Error("backstory should end with the covenant")
	}
	for _, marker := range []string{"# ", "**", "> "} {
		if strings.Contains(got, marker) {
			t.Errorf("plain backstory still contains markdown %q", marker)
		}
	}
}

func TestBackstoryCmd_RejectsArgs(t *testing.T) {
	t.Parallel()

	if _, err := executeCommand(testContext(t), newBackstoryCmd(), "extra"); err == nil {
		t.Error("backstory with an argument should fail")
	}
}
