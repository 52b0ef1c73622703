//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "dailyread"

// Default target to run when none is specified
var Default = Build

// Build compiles the dailyread binary
func Build() error {
	fmt.Println("Building", binary)
	return sh.RunV("go", "build", "-o", binary, "./cmd/dailyread")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs dailyread into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/dailyread")
}

// Run builds and regenerates the documents once
func Run() error {
	mg.Deps(Build)
	return sh.RunV("./" + binary)
}

// Clean removes the binary and the generated output
func Clean() error {
	for _, path := range []string{binary, "output"} {
		if err := os.RemoveAll(path); err != nil {
			return err
		}
	}
	return nil
}
