package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rabbitsfoot/rabbitsfoot/source/settings"
)

func TestMessagesGoToErrOut(t *testing.T) {
	t.Setenv(settings.ENV_SEED, "")
	t.Setenv(settings.ENV_HISTORY, "")
	tests := []struct {
		args    []string
		code    int
		wantErr string
	}{
		{[]string{}, 1, "Please pass filename of code"},
		{[]string{"--frobnicate"}, 2, "Usage: rabbitsfoot"},
		{[]string{"--seed"}, 2, "needs a value"},
	}
	for _, test := range tests {
		var out, errOut bytes.Buffer
		if code := run(test.args, strings.NewReader(""), &out, &errOut); code != test.code {
			t.Fatalf("Args %v | Wanted exit code %d | Got %d.", test.args, test.code, code)
		}
		if out.Len() != 0 || !strings.Contains(errOut.String(), test.wantErr) {
			t.Fatalf("Args %v | Wanted %q on errOut and nothing on out | Got %q / %q.", test.args, test.wantErr, out.String(), errOut.String())
		}
	}
}

func TestBadSeedInEnvironment(t *testing.T) {
	t.Setenv(settings.ENV_SEED, "many")
	var out, errOut bytes.Buffer
	if code := run([]string{"prog.rf"}, strings.NewReader(""), &out, &errOut); code != 2 {
		t.Fatalf("Wanted exit code 2, got %d.", code)
	}
	if !strings.Contains(errOut.String(), settings.ENV_SEED) {
		t.Fatalf("Wanted the problem with %s on errOut, got %q.", settings.ENV_SEED, errOut.String())
	}
}

func TestRunWritesOnlyTheList(t *testing.T) {
	t.Setenv(settings.ENV_SEED, "")
	t.Setenv(settings.ENV_HISTORY, "")
	filename := filepath.Join(t.TempDir(), "prog.rf")
	if e := os.WriteFile(filename, []byte(",|\n."), 0644); e != nil {
		t.Fatalf("Couldn't write program: %s", e)
	}
	var out, errOut bytes.Buffer
	if code := run([]string{filename}, strings.NewReader("[1, 2]\n"), &out, &errOut); code != 0 {
		t.Fatalf("Wanted exit code 0, got %d: %s", code, errOut.String())
	}
	if out.String() != "[1, 1]\n" || errOut.Len() != 0 {
		t.Fatalf("Wanted only the list on out, got %q / %q.", out.String(), errOut.String())
	}
}
