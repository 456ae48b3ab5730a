// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orders

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestDiscover(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T) string
		want      []string // base names, in order
		wantWarn  string
	}{
		{
			name: "sorts CSV files by name",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "2024-06.csv", "a\n")
				writeFile(t, dir, "2024-01.csv", "a\n")
				writeFile(t, dir, "2023-12.csv", "a\n")
				return dir
			},
			want: []string{"2023-12.csv", "2024-01.csv", "2024-06.csv"},
		},
		{
			name: "ignores non-CSV files, dotfiles, and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "orders.csv", "a\n")
				writeFile(t, dir, "notes.txt", "x")
				writeFile(t, dir, ".hidden.csv", "a\n")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.csv"), 0o755))
				return dir
			},
			want: []string{"orders.csv"},
		},
		{
			name: "accepts uppercase extension",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "EXPORT.CSV", "a\n")
				return dir
			},
			want: []string{"EXPORT.CSV"},
		},
		{
			name: "missing directory warns and returns nothing",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want:     nil,
			wantWarn: "does not exist",
		},
		{
			name: "empty directory warns and returns nothing",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			want:     nil,
			wantWarn: "no CSV files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			var warn bytes.Buffer

			paths, err := Discover(dir, &warn)
			require.NoError(t, err)

			var names []string
			for _, p := range paths {
				names = append(names, filepath.Base(p))
			}
			assert.Equal(t, tt.want, names)

			if tt.wantWarn != "" {
				assert.Contains(t, warn.String(), tt.wantWarn)
			} else {
				assert.Empty(t, warn.String())
			}
		})
	}
}
