//go:build mage

// Package main contains Mage build targets for parts-catalog developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

const (
	binDir    = "bin"
	binName   = "parts-catalog"
	cmdPkg    = "./cmd/parts-catalog"
	ordersDir = "orders"
)

// Init creates the orders directory the pipeline reads from.
func Init() error {
	if err := os.MkdirAll(ordersDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", ordersDir, err)
	}
	fmt.Println("  ", ordersDir)
	fmt.Println("Project directories initialized.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	cmd := exec.Command("go", "build", "-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	cmd := exec.Command("go", "test", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go test: %w", err)
	}
	return nil
}

// Update rebuilds the binary and regenerates combined.csv and README.md
// from the orders directory.
func Update() error {
	if err := Build(); err != nil {
		return err
	}
	cmd := exec.Command(filepath.Join(binDir, binName), "build")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("parts-catalog build: %w", err)
	}
	return nil
}
