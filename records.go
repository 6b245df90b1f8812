package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"path"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// BinaryData is the downloaded content of one file. Data is dropped once a
// sink has stored it; Location then points at the stored copy.
type BinaryData struct {
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	FileSize int64  `json:"fileSize"`
	Location string `json:"location,omitempty"`
	Data     []byte `json:"-"`
}

func newBinaryData(fileName string, data []byte) *BinaryData {
	return &BinaryData{
		FileName: fileName,
		MimeType: mimetype.Detect(data).String(),
		FileSize: int64(len(data)),
		Data:     data,
	}
}

// ResultRecord describes one downloaded file
type ResultRecord struct {
	FileName       string                 `json:"fileName"`
	FilePath       string                 `json:"filePath"`
	RelativePath   string                 `json:"relativePath"`
	FileSize       int64                  `json:"fileSize"`
	BackupFolder   string                 `json:"backupFolder"`
	CompanyCode    string                 `json:"companyCode"`
	ModifyTime     time.Time              `json:"modifyTime"`
	BatchOffset    int                    `json:"batchOffset"`
	BatchLimit     int                    `json:"batchLimit"`
	BatchFileIndex int                    `json:"batchFileIndex"`
	BatchFileCount int                    `json:"batchFileCount"`
	HasMoreFiles   bool                   `json:"hasMoreFiles"`
	NextOffset     *int                   `json:"nextOffset"`
	Binary         map[string]*BinaryData `json:"binary"`
	PairedItem     int                    `json:"pairedItem"`
}

// ErrorRecord replaces the output of an item that failed while failures
// are tolerated
type ErrorRecord struct {
	Error      string `json:"error"`
	PairedItem int    `json:"pairedItem"`
}

// Emitter receives records in the order they are produced
type Emitter interface {
	EmitResult(ctx context.Context, rec *ResultRecord) error
	EmitError(ctx context.Context, rec *ErrorRecord) error
}

// recordWriter stores binaries through a sink and writes records as NDJSON
type recordWriter struct {
	enc  *json.Encoder
	sink Sink
}

func newRecordWriter(w io.Writer, sink Sink) *recordWriter {
	return &recordWriter{enc: json.NewEncoder(w), sink: sink}
}

func (w *recordWriter) EmitResult(ctx context.Context, rec *ResultRecord) error {
	for prop, bin := range rec.Binary {
		if bin.Data == nil {
			continue
		}
		key := path.Join(rec.CompanyCode, rec.BackupFolder, rec.RelativePath)
		location, err := w.sink.Put(ctx, key, bin.Data, bin.MimeType)
		if err != nil {
			return fmt.Errorf("failed to store %s (%s): %w", rec.FilePath, prop, err)
		}
		bin.Location = location
		bin.Data = nil
		log.Printf("Stored %s -> %s (%s)", rec.FilePath, location, FormatBytes(bin.FileSize))
	}
	return w.enc.Encode(rec)
}

func (w *recordWriter) EmitError(ctx context.Context, rec *ErrorRecord) error {
	return w.enc.Encode(rec)
}

func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
