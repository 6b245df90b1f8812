package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	defaultBasePath           = "/fromcdg/backup/"
	defaultFilePattern        = "*"
	defaultBinaryPropertyName = "data"
)

// Item holds the parameters of one retrieval
type Item struct {
	Protocol           string `json:"protocol,omitempty"`
	Host               string `json:"host"`
	Port               int    `json:"port,omitempty"`
	Username           string `json:"username"`
	Password           string `json:"password,omitempty"`
	CompanyCode        string `json:"companyCode"`
	BasePath           string `json:"basePath,omitempty"`
	FilePattern        string `json:"filePattern,omitempty"`
	Offset             int    `json:"offset,omitempty"`
	Limit              int    `json:"limit,omitempty"`
	BinaryPropertyName string `json:"binaryPropertyName,omitempty"`
	HostKeyPolicy      string `json:"hostKeyPolicy,omitempty"`
	KnownHostsFile     string `json:"knownHostsFile,omitempty"`
}

// inherit fills every empty field from base. Offset and limit are never
// inherited.
func (it Item) inherit(base Item) Item {
	pick := func(v, fallback string) string {
		if v != "" {
			return v
		}
		return fallback
	}

	it.Protocol = pick(it.Protocol, base.Protocol)
	it.Host = pick(it.Host, base.Host)
	it.Username = pick(it.Username, base.Username)
	it.Password = pick(it.Password, base.Password)
	it.CompanyCode = pick(it.CompanyCode, base.CompanyCode)
	it.BasePath = pick(it.BasePath, base.BasePath)
	it.FilePattern = pick(it.FilePattern, base.FilePattern)
	it.BinaryPropertyName = pick(it.BinaryPropertyName, base.BinaryPropertyName)
	it.HostKeyPolicy = pick(it.HostKeyPolicy, base.HostKeyPolicy)
	it.KnownHostsFile = pick(it.KnownHostsFile, base.KnownHostsFile)
	if it.Port == 0 {
		it.Port = base.Port
	}
	return it
}

// withDefaults inherits from base and then applies the built-in defaults
func (it Item) withDefaults(base Item) Item {
	it = it.inherit(base)

	it.Protocol = strings.ToLower(it.Protocol)
	if it.Protocol == "" {
		it.Protocol = "sftp"
	}
	if it.BasePath == "" {
		it.BasePath = defaultBasePath
	}
	if it.FilePattern == "" {
		it.FilePattern = defaultFilePattern
	}
	if it.BinaryPropertyName == "" {
		it.BinaryPropertyName = defaultBinaryPropertyName
	}
	if it.Port == 0 {
		it.Port = 22
		if it.Protocol == "ftp" {
			it.Port = 21
		}
	}
	return it
}

func (it Item) validate() error {
	switch {
	case it.Host == "":
		return fmt.Errorf("host is required")
	case it.Username == "":
		return fmt.Errorf("username is required")
	case it.Port < 1 || it.Port > 65535:
		return fmt.Errorf("invalid port: %d", it.Port)
	case it.Offset < 0:
		return fmt.Errorf("offset must not be negative: %d", it.Offset)
	case it.Limit < 0:
		return fmt.Errorf("limit must not be negative: %d", it.Limit)
	}
	return nil
}

func parseItemsFile(filename string) ([]Item, error) {
	if filename == "-" {
		return parseItems(os.Stdin)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parseItems(f)
}

// parseItems accepts either a JSON array of items or one JSON object per line
func parseItems(r io.Reader) ([]Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		var items []Item
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("failed to parse items: %w", err)
		}
		return items, nil
	}

	var items []Item
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var item Item
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			return nil, fmt.Errorf("failed to parse item on line %d: %w", lineNum, err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
