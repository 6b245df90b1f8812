package main

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"
)

// Retriever runs items one after another, each on its own connection
type Retriever struct {
	emitter        Emitter
	continueOnFail bool
	defaults       Item
	dial           func(Item) (Connector, error)
}

func NewRetriever(emitter Emitter, defaults Item, continueOnFail bool) *Retriever {
	return &Retriever{
		emitter:        emitter,
		continueOnFail: continueOnFail,
		defaults:       defaults,
		dial:           dialConnector,
	}
}

// Run processes items sequentially. Without continueOnFail the first item
// error stops the run and is returned.
func (r *Retriever) Run(ctx context.Context, items []Item) error {
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := r.processItem(ctx, i, item)
		if err == nil {
			continue
		}
		if !r.continueOnFail {
			return fmt.Errorf("item %d: %w", i, err)
		}

		log.Printf("Item %d failed: %v", i, err)
		if emitErr := r.emitter.EmitError(ctx, &ErrorRecord{Error: err.Error(), PairedItem: i}); emitErr != nil {
			return fmt.Errorf("item %d: %w", i, emitErr)
		}
	}
	return nil
}

func (r *Retriever) processItem(ctx context.Context, index int, item Item) error {
	item = item.withDefaults(r.defaults)
	if err := item.validate(); err != nil {
		return err
	}

	conn, err := r.dial(item)
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("Closing connection to %s: %v", item.Host, err)
		}
	}()

	folder, backupPath, err := locateBackupFolder(conn, item)
	if err != nil {
		return err
	}

	files, err := enumerateFiles(conn, backupPath, item.FilePattern, fetchLimit(item.Offset, item.Limit))
	if err != nil {
		return err
	}
	window := applyWindow(files, item.Offset, item.Limit)
	log.Printf("Item %d: %d file(s) in %s, downloading %d from offset %d", index, len(files), backupPath, len(window.Page), item.Offset)

	for i, file := range window.Page {
		data, err := conn.Get(file.Path)
		if err != nil {
			return &TransferError{Op: "get", Path: file.Path, Err: err}
		}

		rec := &ResultRecord{
			FileName:       file.Name,
			FilePath:       file.Path,
			RelativePath:   strings.TrimPrefix(strings.TrimPrefix(file.Path, backupPath), "/"),
			FileSize:       file.Size,
			BackupFolder:   folder.Name,
			CompanyCode:    item.CompanyCode,
			ModifyTime:     file.ModifyTime,
			BatchOffset:    item.Offset,
			BatchLimit:     item.Limit,
			BatchFileIndex: i,
			BatchFileCount: len(window.Page),
			HasMoreFiles:   window.HasMore,
			NextOffset:     window.NextOffset,
			Binary: map[string]*BinaryData{
				item.BinaryPropertyName: newBinaryData(file.Name, data),
			},
			PairedItem: index,
		}
		if err := r.emitter.EmitResult(ctx, rec); err != nil {
			return err
		}
	}

	return nil
}

// locateBackupFolder lists the base path and resolves the backup folder in it
func locateBackupFolder(conn Lister, item Item) (DirectoryEntry, string, error) {
	if verbose {
		log.Printf("Listing: %s", item.BasePath)
	}
	entries, err := conn.List(item.BasePath)
	if err != nil {
		return DirectoryEntry{}, "", &TransferError{Op: "list", Path: item.BasePath, Err: err}
	}

	folder, err := resolveBackupFolder(entries, item.CompanyCode, item.BasePath)
	if err != nil {
		return DirectoryEntry{}, "", err
	}
	return folder, path.Join(item.BasePath, folder.Name), nil
}

// listWindow resolves and enumerates like processItem without downloading
func listWindow(item Item, dial func(Item) (Connector, error)) (DirectoryEntry, BatchWindow, error) {
	conn, err := dial(item)
	if err != nil {
		return DirectoryEntry{}, BatchWindow{}, err
	}
	defer conn.Close()

	folder, backupPath, err := locateBackupFolder(conn, item)
	if err != nil {
		return DirectoryEntry{}, BatchWindow{}, err
	}

	files, err := enumerateFiles(conn, backupPath, item.FilePattern, fetchLimit(item.Offset, item.Limit))
	if err != nil {
		return DirectoryEntry{}, BatchWindow{}, err
	}
	return folder, applyWindow(files, item.Offset, item.Limit), nil
}
