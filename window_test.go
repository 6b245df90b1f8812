package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedFiles(n int) []EnumeratedFile {
	files := make([]EnumeratedFile, n)
	for i := range files {
		files[i] = EnumeratedFile{Name: fmt.Sprint(i), Path: fmt.Sprintf("/b/%d", i)}
	}
	return files
}

func TestFetchLimit(t *testing.T) {
	assert.Equal(t, 0, fetchLimit(5, 0))
	assert.Equal(t, 8, fetchLimit(3, 4))
	assert.Equal(t, 2, fetchLimit(0, 1))
}

func TestApplyWindow(t *testing.T) {
	files := numberedFiles(10)

	tests := []struct {
		name       string
		offset     int
		limit      int
		wantPaths  []string
		wantMore   bool
		wantOffset *int
	}{
		{"middle page", 3, 4, []string{"/b/3", "/b/4", "/b/5", "/b/6"}, true, intPtr(7)},
		{"last partial page", 8, 4, []string{"/b/8", "/b/9"}, false, nil},
		{"exact end", 6, 4, []string{"/b/6", "/b/7", "/b/8", "/b/9"}, false, nil},
		{"unbounded from offset", 7, 0, []string{"/b/7", "/b/8", "/b/9"}, false, nil},
		{"offset past end", 12, 4, []string{}, false, nil},
		{"offset at end unbounded", 10, 0, []string{}, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := applyWindow(files, tt.offset, tt.limit)
			assert.Equal(t, tt.wantPaths, filePaths(w.Page))
			assert.Equal(t, tt.wantMore, w.HasMore)
			assert.Equal(t, tt.wantOffset, w.NextOffset)
			assert.Equal(t, tt.offset, w.Offset)
			assert.Equal(t, tt.limit, w.Limit)
		})
	}
}

func TestWindowOverCappedEnumeration(t *testing.T) {
	conn := newMemConnector()
	for i := 0; i < 10; i++ {
		conn.addFile(fmt.Sprintf("/b/f%02d", i), "")
	}

	files, err := enumerateFiles(conn, "/b", "*", fetchLimit(3, 4))
	require.NoError(t, err)
	require.Len(t, files, 8)

	w := applyWindow(files, 3, 4)
	assert.Equal(t, []string{"/b/f03", "/b/f04", "/b/f05", "/b/f06"}, filePaths(w.Page))
	assert.True(t, w.HasMore)
	require.NotNil(t, w.NextOffset)
	assert.Equal(t, 7, *w.NextOffset)

	files, err = enumerateFiles(conn, "/b", "*", fetchLimit(8, 4))
	require.NoError(t, err)
	w = applyWindow(files, 8, 4)
	assert.Equal(t, []string{"/b/f08", "/b/f09"}, filePaths(w.Page))
	assert.False(t, w.HasMore)
	assert.Nil(t, w.NextOffset)
}

func intPtr(v int) *int { return &v }
