package main

// BatchWindow is one page of the enumerated file list
type BatchWindow struct {
	Offset     int
	Limit      int
	Page       []EnumeratedFile
	HasMore    bool
	NextOffset *int
}

// fetchLimit is the enumeration cap needed to serve offset/limit. One file
// past the page is fetched so HasMore can be answered without a second walk.
func fetchLimit(offset, limit int) int {
	if limit <= 0 {
		return 0
	}
	return offset + limit + 1
}

func applyWindow(files []EnumeratedFile, offset, limit int) BatchWindow {
	w := BatchWindow{Offset: offset, Limit: limit}
	if offset >= len(files) {
		w.Page = []EnumeratedFile{}
		return w
	}

	end := len(files)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	w.Page = files[offset:end]

	if limit > 0 && len(files) > offset+limit {
		next := offset + limit
		w.HasMore = true
		w.NextOffset = &next
	}
	return w
}
