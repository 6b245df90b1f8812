package main

import (
	"time"
)

// EntryType classifies a remote directory entry
type EntryType int

const (
	EntryOther EntryType = iota
	EntryFile
	EntryDirectory
)

func (t EntryType) String() string {
	switch t {
	case EntryFile:
		return "file"
	case EntryDirectory:
		return "directory"
	default:
		return "other"
	}
}

// DirectoryEntry is one element of a remote listing
type DirectoryEntry struct {
	Name       string
	Type       EntryType
	Size       int64
	ModifyTime time.Time
}

// EnumeratedFile is a matching file found while walking the backup folder
type EnumeratedFile struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	ModifyTime time.Time `json:"modifyTime"`
}

// Lister lists a remote directory in server order
type Lister interface {
	List(path string) ([]DirectoryEntry, error)
}

// Connector interface for remote file operations
type Connector interface {
	Lister
	Get(path string) ([]byte, error)
	Close() error
}

// ConnectorFactory interface for creating connectors
type ConnectorFactory interface {
	Accept(protocol string) bool
	Create(item Item) (Connector, error)
	Name() string
}
