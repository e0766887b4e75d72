package main

import (
	"io"
	"os"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
