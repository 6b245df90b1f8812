package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg     *Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "backupfetch",
	Short: "Retrieve backup folders from SFTP/FTP servers",
	Long: `backupfetch locates a company's backup folder on a remote file server,
walks it recursively and downloads the matching files page by page.

Connection settings can come from flags, an items file or a credential
profile (SFTP_HOST, SFTP_PORT, SFTP_USERNAME, SFTP_PASSWORD) loaded from the
environment, a .env file or --profile.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		profile, _ := cmd.Flags().GetString("profile")
		var err error
		cfg, err = loadConfig(profile)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().String("profile", "", "Credential profile file (dotenv format)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func main() {
	log.SetOutput(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
