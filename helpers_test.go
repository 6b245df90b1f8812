package main

import (
	"context"
	"fmt"
	"os"
	"path"
	"time"
)

var testModTime = time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)

// memConnector serves a fixed tree; listings keep insertion order
type memConnector struct {
	dirs    map[string][]DirectoryEntry
	files   map[string][]byte
	listErr map[string]error
	getErr  map[string]error
	listed  []string
	fetched []string
	closed  int
}

func newMemConnector() *memConnector {
	return &memConnector{
		dirs:    map[string][]DirectoryEntry{"/": {}},
		files:   map[string][]byte{},
		listErr: map[string]error{},
		getErr:  map[string]error{},
	}
}

func (m *memConnector) addDir(p string) *memConnector {
	p = path.Clean(p)
	if _, ok := m.dirs[p]; ok {
		return m
	}
	parent := path.Dir(p)
	m.addDir(parent)
	m.dirs[parent] = append(m.dirs[parent], DirectoryEntry{
		Name:       path.Base(p),
		Type:       EntryDirectory,
		ModifyTime: testModTime,
	})
	m.dirs[p] = []DirectoryEntry{}
	return m
}

func (m *memConnector) addFile(p, content string) *memConnector {
	p = path.Clean(p)
	dir := path.Dir(p)
	m.addDir(dir)
	m.dirs[dir] = append(m.dirs[dir], DirectoryEntry{
		Name:       path.Base(p),
		Type:       EntryFile,
		Size:       int64(len(content)),
		ModifyTime: testModTime,
	})
	m.files[p] = []byte(content)
	return m
}

func (m *memConnector) addOther(p string) *memConnector {
	p = path.Clean(p)
	dir := path.Dir(p)
	m.addDir(dir)
	m.dirs[dir] = append(m.dirs[dir], DirectoryEntry{Name: path.Base(p), Type: EntryOther})
	return m
}

func (m *memConnector) List(dir string) ([]DirectoryEntry, error) {
	dir = path.Clean(dir)
	m.listed = append(m.listed, dir)
	if err := m.listErr[dir]; err != nil {
		return nil, err
	}
	entries, ok := m.dirs[dir]
	if !ok {
		return nil, fmt.Errorf("%s: %w", dir, os.ErrNotExist)
	}
	return append([]DirectoryEntry(nil), entries...), nil
}

func (m *memConnector) Get(p string) ([]byte, error) {
	p = path.Clean(p)
	m.fetched = append(m.fetched, p)
	if err := m.getErr[p]; err != nil {
		return nil, err
	}
	data, ok := m.files[p]
	if !ok {
		return nil, fmt.Errorf("%s: %w", p, os.ErrNotExist)
	}
	return append([]byte(nil), data...), nil
}

func (m *memConnector) Close() error {
	m.closed++
	return nil
}

// collectingEmitter keeps records in memory
type collectingEmitter struct {
	results []*ResultRecord
	errors  []*ErrorRecord
	order   []string
	failOn  string
}

func (c *collectingEmitter) EmitResult(_ context.Context, rec *ResultRecord) error {
	if c.failOn != "" && rec.FilePath == c.failOn {
		return fmt.Errorf("emit %s: refused", rec.FilePath)
	}
	c.results = append(c.results, rec)
	c.order = append(c.order, "result:"+rec.FilePath)
	return nil
}

func (c *collectingEmitter) EmitError(_ context.Context, rec *ErrorRecord) error {
	c.errors = append(c.errors, rec)
	c.order = append(c.order, fmt.Sprintf("error:%d", rec.PairedItem))
	return nil
}

func filePaths(files []EnumeratedFile) []string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	return paths
}
