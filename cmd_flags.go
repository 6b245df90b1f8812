package main

import (
	"github.com/spf13/cobra"
)

func addItemFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("protocol", "", "Transfer protocol: sftp or ftp (default sftp)")
	f.String("host", "", "Server hostname")
	f.Int("port", 0, "Server port (default 22 for sftp, 21 for ftp)")
	f.String("username", "", "Username")
	f.String("password", "", "Password")
	f.String("company-code", "", "Company code prefix of the backup folder, e.g. CO655")
	f.String("base-path", "", "Base directory on the server (default "+defaultBasePath+")")
	f.String("file-pattern", "", "File name pattern, * is the only wildcard (default *)")
	f.Int("offset", 0, "Number of matching files to skip")
	f.Int("limit", 0, "Number of files in this batch (0 = all)")
	f.String("binary-property-name", "", "Record property holding the file content (default "+defaultBinaryPropertyName+")")
	f.String("host-key-policy", "", "SSH host key policy: insecure, known-hosts or prompt (default insecure)")
	f.String("known-hosts", "", "known_hosts file for --host-key-policy=known-hosts")
	f.Bool("ask-password", false, "Prompt for the password when none is configured")
}

func itemFromFlags(cmd *cobra.Command) Item {
	f := cmd.Flags()
	var it Item
	it.Protocol, _ = f.GetString("protocol")
	it.Host, _ = f.GetString("host")
	it.Port, _ = f.GetInt("port")
	it.Username, _ = f.GetString("username")
	it.Password, _ = f.GetString("password")
	it.CompanyCode, _ = f.GetString("company-code")
	it.BasePath, _ = f.GetString("base-path")
	it.FilePattern, _ = f.GetString("file-pattern")
	it.Offset, _ = f.GetInt("offset")
	it.Limit, _ = f.GetInt("limit")
	it.BinaryPropertyName, _ = f.GetString("binary-property-name")
	it.HostKeyPolicy, _ = f.GetString("host-key-policy")
	it.KnownHostsFile, _ = f.GetString("known-hosts")
	return it
}

// baseItem merges flags over the stored profile and prompts for a missing
// password when asked to
func baseItem(cmd *cobra.Command) (Item, error) {
	base := itemFromFlags(cmd)
	if cfg != nil {
		base = base.inherit(cfg.Profile)
	}

	ask, _ := cmd.Flags().GetBool("ask-password")
	if ask && base.Password == "" {
		password, err := askPassword("Enter password: ")
		if err != nil {
			return Item{}, err
		}
		base.Password = string(password)
		secureWipe(password)
	}
	return base, nil
}
