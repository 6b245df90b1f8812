package main

import (
	"strings"
)

// resolveBackupFolder picks the backup folder out of a base path listing.
// A lone directory wins regardless of company code; otherwise the first
// directory named "<companyCode>-..." in listing order is used.
func resolveBackupFolder(entries []DirectoryEntry, companyCode, basePath string) (DirectoryEntry, error) {
	var directories []DirectoryEntry
	for _, e := range entries {
		if e.Type == EntryDirectory {
			directories = append(directories, e)
		}
	}

	prefix := companyCode + "-"

	if len(directories) == 1 {
		return directories[0], nil
	}
	for _, d := range directories {
		if strings.HasPrefix(d.Name, prefix) {
			return d, nil
		}
	}

	names := make([]string, 0, len(directories))
	for _, d := range directories {
		names = append(names, d.Name)
	}
	return DirectoryEntry{}, &FolderNotFoundError{
		Prefix:      prefix,
		BasePath:    basePath,
		Directories: names,
	}
}
