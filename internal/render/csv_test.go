// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/parts-catalog/pkg/types"
)

var testTable = types.Table{
	Columns: []string{"LCSC Part Number", "MPN", "Description"},
	Rows: [][]string{
		{"C1525", "CL10B104KB8NNNC", "100nF capacitor"},
		{"C25804", "0603WAF1002T5E", "10k resistor, 1%"},
	},
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined.csv")

	if err := WriteCSV(path, testTable); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "LCSC Part Number,MPN,Description\n" +
		"C1525,CL10B104KB8NNNC,100nF capacitor\n" +
		"C25804,0603WAF1002T5E,\"10k resistor, 1%\"\n"
	if string(data) != want {
		t.Errorf("combined.csv = %q, want %q", data, want)
	}
}

func TestWriteCSV_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined.csv")
	empty := types.Table{Columns: []string{"LCSC Part Number", "MPN", "Description"}}

	if err := WriteCSV(path, empty); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "LCSC Part Number,MPN,Description\n" {
		t.Errorf("header-only output = %q", data)
	}
}

func TestWriteCSV_Idempotent(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")

	if err := WriteCSV(first, testTable); err != nil {
		t.Fatal(err)
	}
	if err := WriteCSV(second, testTable); err != nil {
		t.Fatal(err)
	}

	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if string(a) != string(b) {
		t.Error("two writes of the same table differ")
	}
}

func TestWriteCSV_UnwritablePath(t *testing.T) {
	err := WriteCSV(filepath.Join(t.TempDir(), "missing", "combined.csv"), testTable)
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestWriteCSV_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := WriteCSV(filepath.Join(dir, "combined.csv"), testTable); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "combined.csv" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("directory contains %v, want only combined.csv", names)
	}
}
