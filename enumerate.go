package main

import (
	"log"
	"path"
)

// enumerateFiles walks root depth-first in server listing order and collects
// regular files whose name matches pattern. With maxFiles > 0 the walk stops
// issuing listings once that many files were collected.
func enumerateFiles(lister Lister, root, pattern string, maxFiles int) ([]EnumeratedFile, error) {
	match := compilePattern(pattern)
	var files []EnumeratedFile

	full := func() bool {
		return maxFiles > 0 && len(files) >= maxFiles
	}

	var walk func(dir string) error
	walk = func(dir string) error {
		if verbose {
			log.Printf("Listing: %s", dir)
		}
		entries, err := lister.List(dir)
		if err != nil {
			return &TransferError{Op: "list", Path: dir, Err: err}
		}

		for _, e := range entries {
			if full() {
				return nil
			}
			if e.Name == "." || e.Name == ".." {
				continue
			}

			entryPath := path.Join(dir, e.Name)
			switch e.Type {
			case EntryDirectory:
				if err := walk(entryPath); err != nil {
					return err
				}
			case EntryFile:
				if !match(e.Name) {
					continue
				}
				if verbose {
					log.Printf("   Found %s (%d bytes)", entryPath, e.Size)
				}
				files = append(files, EnumeratedFile{
					Name:       e.Name,
					Path:       entryPath,
					Size:       e.Size,
					ModifyTime: e.ModifyTime,
				})
			}
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}
	return files, nil
}
