package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultSessionName(t *testing.T) {
	name := defaultSessionName()
	if name == "" {
		t.Fatal("empty session name")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if !strings.HasPrefix(name, filepath.Base(wd)+"_") {
		t.Errorf("session name %q does not start with the directory name", name)
	}
}
