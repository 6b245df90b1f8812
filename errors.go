package main

import (
	"fmt"
	"strings"
)

// ConnectionError reports a transport or authentication failure. The
// connection is never retried.
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// FolderNotFoundError is returned when no directory in the base path
// satisfies the backup folder rule.
type FolderNotFoundError struct {
	Prefix      string
	BasePath    string
	Directories []string
}

func (e *FolderNotFoundError) Error() string {
	return fmt.Sprintf("No backup folder found. Looking for: %q. Found %d directories: [%s]. Base path: %s",
		e.Prefix+"*", len(e.Directories), strings.Join(e.Directories, ", "), e.BasePath)
}

// TransferError wraps a listing or download failure on the remote side.
type TransferError struct {
	Op   string // "list" or "get"
	Path string
	Err  error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }
