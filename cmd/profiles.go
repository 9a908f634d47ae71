package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hashdot/hashdot/internal/constants"
	"github.com/hashdot/hashdot/internal/embedded"
	"github.com/hashdot/hashdot/internal/logging"
	"github.com/hashdot/hashdot/internal/params"
	"github.com/hashdot/hashdot/internal/styles"
)

var (
	extractProfiles bool
	forceExtract    bool
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List or extract launch profiles",
	Long: `List the profiles available in the profile directory alongside the
samples embedded in the binary, or extract the embedded samples into the
profile directory.

Examples:
  # List on-disk and embedded profiles
  hashdot profiles

  # Write the embedded samples into the profile directory
  hashdot profiles --extract

  # Overwrite existing files
  hashdot profiles --extract --force`,
	Run: func(cmd *cobra.Command, args []string) {
		dir := params.ProfileDir()

		if extractProfiles {
			written, err := embedded.ExtractProfiles(dir, forceExtract)
			if err != nil {
				logging.UserErrorf("extracting profiles: %v", err)
				os.Exit(1)
			}
			for _, w := range written {
				logging.Successf("wrote %s", w)
			}
			if len(written) == 0 {
				logging.UserInfo("nothing to extract (use --force to overwrite)")
			}
			return
		}

		listProfiles(dir)
	},
}

func init() {
	profilesCmd.Flags().BoolVar(&extractProfiles, "extract", false, "Extract embedded sample profiles into the profile directory")
	profilesCmd.Flags().BoolVar(&forceExtract, "force", false, "Overwrite existing profile files when extracting")
	rootCmd.AddCommand(profilesCmd)
}

func listProfiles(dir string) {
	out := os.Stdout

	styles.PrintStyledln(out, styles.SectionStyle, fmt.Sprintf("Profiles in %s:", dir))
	entries, err := os.ReadDir(dir)
	if err != nil {
		styles.PrintStyledln(out, styles.MutedStyle, "  (directory not readable: "+err.Error()+")")
	} else {
		var names []string
		for _, e := range entries {
			if strings.HasSuffix(e.Name(), constants.ProfileExt) {
				names = append(names, strings.TrimSuffix(e.Name(), constants.ProfileExt))
			}
		}
		sort.Strings(names)
		for _, n := range names {
			styles.PrintStyled(out, styles.KeyStyle, "  "+n)
			fmt.Fprintf(out, "  %s\n", filepath.Join(dir, n+constants.ProfileExt))
		}
		if len(names) == 0 {
			styles.PrintStyledln(out, styles.MutedStyle, "  (none)")
		}
	}

	names, err := embedded.ListProfiles()
	if err != nil {
		logging.UserErrorf("listing embedded profiles: %v", err)
		os.Exit(1)
	}
	styles.PrintStyledln(out, styles.SectionStyle, "Embedded samples:")
	for _, n := range names {
		styles.PrintStyledln(out, styles.KeyStyle, "  "+n)
	}
}
