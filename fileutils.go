package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// resolveLocalPath maps a sink key below localBasePath and refuses keys that
// would escape it
func resolveLocalPath(key, localBasePath string) (string, error) {
	base, err := filepath.Abs(localBasePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	relativePath := strings.TrimPrefix(key, "/")
	localPath := filepath.Join(base, filepath.FromSlash(relativePath))

	if localPath != base && !strings.HasPrefix(localPath, base+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes %s", key, base)
	}
	return localPath, nil
}

func saveFile(localPath string, reader io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	destFile, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer func() {
		_ = destFile.Close()
	}()

	_, err = io.Copy(destFile, reader)
	if err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	return destFile.Sync()
}

// atomicFile is written to a temporary sibling and renamed into place on Close
type atomicFile struct {
	*os.File
	target string
}

func createAtomic(target string) (*atomicFile, error) {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	f, err := os.Create(target + ".tmp")
	if err != nil {
		return nil, err
	}
	return &atomicFile{File: f, target: target}, nil
}

func (a *atomicFile) Close() error {
	if err := a.File.Close(); err != nil {
		return err
	}
	return os.Rename(a.File.Name(), a.target)
}
