// Package test contains helpers shared by package tests.
package test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// FixturePath returns the path of a file in module testdata directory.
func FixturePath(name string) string {
	_, thisFile, _, _ := runtime.Caller(0)
	root := filepath.Join(filepath.Dir(thisFile), "..", "..")
	return filepath.Join(root, "testdata", name)
}

// Fixture returns the content of a file in module testdata directory.
func Fixture(t testing.TB, name string) string {
	t.Helper()
	content, e := os.ReadFile(FixturePath(name))
	require.NoError(t, e, "fixture %s", name)
	return string(content)
}

// TempFile writes content to a new file in test temporary directory and returns its path.
func TempFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o666))
	return path
}
