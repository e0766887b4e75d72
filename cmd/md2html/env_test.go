package main

import (
	"os"
	"testing"
)

func TestDefaultEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()

	if env.Stdout != os.Stdout {
		t.Error("Stdout should be os.Stdout")
	}
	if env.Stderr != os.Stderr {
		t.Error("Stderr should be os.Stderr")
	}
}
