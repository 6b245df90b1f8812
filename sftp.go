package main

import (
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

type SFTPConnectorFactory struct{}

func (f *SFTPConnectorFactory) Accept(protocol string) bool {
	return protocol == "" || protocol == "sftp"
}

func (f *SFTPConnectorFactory) Create(item Item) (Connector, error) {
	return NewSFTPConnector(item)
}

func (f *SFTPConnectorFactory) Name() string {
	return "sftp"
}

type SFTPConnector struct {
	ssh    *ssh.Client
	client *sftp.Client
	creds  *Credentials
	closed bool
}

func NewSFTPConnector(item Item) (*SFTPConnector, error) {
	addr := net.JoinHostPort(item.Host, strconv.Itoa(item.Port))

	hostKeys, err := hostKeyCallback(item.HostKeyPolicy, item.KnownHostsFile)
	if err != nil {
		return nil, &ConnectionError{Addr: addr, Err: err}
	}

	creds := newCredentials(item.Username, item.Password)
	config := &ssh.ClientConfig{
		User: creds.username,
		Auth: []ssh.AuthMethod{
			ssh.PasswordCallback(func() (string, error) {
				return string(creds.password), nil
			}),
			ssh.KeyboardInteractive(func(user, instruction string, questions []string, echos []bool) ([]string, error) {
				answers := make([]string, len(questions))
				for i := range questions {
					answers[i] = string(creds.password)
				}
				return answers, nil
			}),
		},
		HostKeyCallback: hostKeys,
	}

	sshClient, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		creds.Clear()
		return nil, &ConnectionError{Addr: addr, Err: err}
	}

	client, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		creds.Clear()
		return nil, &ConnectionError{Addr: addr, Err: fmt.Errorf("failed to start sftp subsystem: %w", err)}
	}

	return &SFTPConnector{
		ssh:    sshClient,
		client: client,
		creds:  creds,
	}, nil
}

// newSFTPConnectorFromClient wraps an already established sftp session
func newSFTPConnectorFromClient(client *sftp.Client) *SFTPConnector {
	return &SFTPConnector{client: client}
}

func (s *SFTPConnector) List(dir string) ([]DirectoryEntry, error) {
	infos, err := s.client.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]DirectoryEntry, 0, len(infos))
	for _, fi := range infos {
		entries = append(entries, fileInfoEntry(fi))
	}
	return entries, nil
}

func fileInfoEntry(fi os.FileInfo) DirectoryEntry {
	entryType := EntryOther
	switch {
	case fi.Mode().IsRegular():
		entryType = EntryFile
	case fi.IsDir():
		entryType = EntryDirectory
	}
	return DirectoryEntry{
		Name:       fi.Name(),
		Type:       entryType,
		Size:       fi.Size(),
		ModifyTime: fi.ModTime(),
	}
}

func (s *SFTPConnector) Get(remotePath string) ([]byte, error) {
	f, err := s.client.Open(remotePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func (s *SFTPConnector) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if s.creds != nil {
		s.creds.Clear()
	}
	err := s.client.Close()
	if s.ssh != nil {
		if sshErr := s.ssh.Close(); sshErr != nil && err == nil {
			err = sshErr
		}
	}
	return err
}
