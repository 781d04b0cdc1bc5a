//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the show binary.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/show", "./cmd/show")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs format check, lint and tests.
func QA() error {
	mg.SerialDeps(Lint, Test)
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}
