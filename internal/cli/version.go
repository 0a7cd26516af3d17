package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/uigen-dev/uigen/internal/branding"
	"github.com/uigen-dev/uigen/internal/config"
	"github.com/uigen-dev/uigen/internal/updater"
)

var (
	versionShort bool
	versionJSON  bool
	versionCheck bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionCheck {
			return checkLatest()
		}

		if versionShort {
			fmt.Println(buildVersion)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version": buildVersion,
				"commit":  buildCommit,
				"date":    buildDate,
			}
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
		return nil
	},
}

// checkLatest queries GitHub for the latest release, reports the result, and
// refreshes the version cache used by the startup banner.
func checkLatest() error {
	u := updater.New(buildVersion)

	release, err := u.CheckLatestVersion()
	if err != nil {
		return fmt.Errorf("checking latest version: %w", err)
	}

	available, err := updater.IsNewer(buildVersion, release.Version)
	if err != nil {
		// Dev builds have no comparable version; report what exists upstream.
		fmt.Printf("Current version %s is not comparable; latest release is %s\n", buildVersion, release.Version)
		return nil
	}

	if available {
		fmt.Printf("Update available: %s -> %s\n", buildVersion, release.Version)
		fmt.Printf("    Get it at https://github.com/%s/releases\n", branding.GitHubRepo())
	} else {
		fmt.Printf("%s %s is up to date.\n", branding.CLIName(), buildVersion)
	}

	_ = updater.SaveCache(config.Dir(), &updater.VersionCache{
		LatestVersion:   release.Version,
		CurrentVersion:  buildVersion,
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	})
	return nil
}
