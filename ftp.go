package main

import (
	"io"
	"net"
	"strconv"

	"github.com/jlaffaye/ftp"
)

type FTPConnectorFactory struct{}

func (f *FTPConnectorFactory) Accept(protocol string) bool {
	return protocol == "ftp"
}

func (f *FTPConnectorFactory) Create(item Item) (Connector, error) {
	return NewFTPConnector(item)
}

func (f *FTPConnectorFactory) Name() string {
	return "ftp"
}

type FTPConnector struct {
	client *ftp.ServerConn
	creds  *Credentials
	closed bool
}

func NewFTPConnector(item Item) (*FTPConnector, error) {
	addr := net.JoinHostPort(item.Host, strconv.Itoa(item.Port))

	c, err := ftp.Dial(addr)
	if err != nil {
		return nil, &ConnectionError{Addr: addr, Err: err}
	}

	creds := newCredentials(item.Username, item.Password)
	err = c.Login(creds.username, string(creds.password))
	if err != nil {
		c.Quit() // Close connection on login failure
		creds.Clear()
		return nil, &ConnectionError{Addr: addr, Err: err}
	}

	return &FTPConnector{
		client: c,
		creds:  creds,
	}, nil
}

func (f *FTPConnector) List(dir string) ([]DirectoryEntry, error) {
	raw, err := f.client.List(dir)
	if err != nil {
		return nil, err
	}
	return ftpEntries(raw), nil
}

func ftpEntries(raw []*ftp.Entry) []DirectoryEntry {
	entries := make([]DirectoryEntry, 0, len(raw))
	for _, e := range raw {
		if e.Name == "." || e.Name == ".." {
			continue
		}

		entryType := EntryOther
		switch e.Type {
		case ftp.EntryTypeFile:
			entryType = EntryFile
		case ftp.EntryTypeFolder:
			entryType = EntryDirectory
		}

		entries = append(entries, DirectoryEntry{
			Name:       e.Name,
			Type:       entryType,
			Size:       int64(e.Size),
			ModifyTime: e.Time,
		})
	}
	return entries
}

func (f *FTPConnector) Get(remotePath string) ([]byte, error) {
	r, err := f.client.Retr(remotePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

func (f *FTPConnector) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	if f.creds != nil {
		f.creds.Clear()
	}
	return f.client.Quit()
}
