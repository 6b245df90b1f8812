package main

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
	"golang.org/x/term"
)

const (
	HostKeyInsecure   = "insecure"
	HostKeyKnownHosts = "known-hosts"
	HostKeyPrompt     = "prompt"
)

type Credentials struct {
	username string
	password []byte
}

func newCredentials(username, password string) *Credentials {
	return &Credentials{
		username: username,
		password: []byte(password),
	}
}

func (c *Credentials) Clear() {
	secureWipe(c.password)
	c.password = nil
}

// secureWipe safely clears sensitive data from memory
// It overwrites the slice with zeros
func secureWipe(data []byte) {
	if data == nil {
		return
	}
	for i := range data {
		data[i] = 0
	}
}

// askPassword reads a password from the terminal without echoing it
func askPassword(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot prompt for password: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

// knownHostsMemo stores host fingerprints already accepted in this process
var (
	knownHostsMemo   = make(map[string]string)
	knownHostsMemoMu sync.Mutex
)

func promptHostKey(in io.Reader, out io.Writer) ssh.HostKeyCallback {
	return func(hostname string, remote net.Addr, key ssh.PublicKey) error {
		fingerprint := ssh.FingerprintSHA256(key)

		knownHostsMemoMu.Lock()
		stored, exists := knownHostsMemo[hostname]
		knownHostsMemoMu.Unlock()
		if exists && stored == fingerprint {
			return nil
		}

		fmt.Fprintf(out, "\nThe authenticity of host '%s' can't be established.\n", hostname)
		fmt.Fprintf(out, "%s key fingerprint is %s\n", key.Type(), fingerprint)
		fmt.Fprint(out, "Are you sure you want to continue connecting (yes/no)? ")

		response, err := bufio.NewReader(in).ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read user input: %w", err)
		}

		response = strings.TrimSpace(strings.ToLower(response))
		if response == "yes" || response == "y" {
			knownHostsMemoMu.Lock()
			knownHostsMemo[hostname] = fingerprint
			knownHostsMemoMu.Unlock()
			return nil
		}

		return fmt.Errorf("host key verification rejected by user")
	}
}

func hostKeyCallback(policy, knownHostsFile string) (ssh.HostKeyCallback, error) {
	switch policy {
	case "", HostKeyInsecure:
		return ssh.InsecureIgnoreHostKey(), nil
	case HostKeyKnownHosts:
		if knownHostsFile == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to locate known_hosts: %w", err)
			}
			knownHostsFile = filepath.Join(home, ".ssh", "known_hosts")
		}
		cb, err := knownhosts.New(knownHostsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load known hosts %s: %w", knownHostsFile, err)
		}
		return cb, nil
	case HostKeyPrompt:
		return promptHostKey(os.Stdin, os.Stderr), nil
	default:
		return nil, fmt.Errorf("unknown host key policy: %s", policy)
	}
}
