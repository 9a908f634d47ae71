package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hashdot/hashdot/internal/constants"
	"github.com/hashdot/hashdot/internal/styles"
)

// EnvVar represents an environment variable with its metadata
type EnvVar struct {
	Name         string
	Description  string
	DefaultValue string
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display environment variable configuration",
	Long: `Display all HASHDOT_* environment variables with their current values,
defaults and descriptions.

Environment variables override config file values (.hashdot.yaml in the
current directory, the home directory, or /etc/hashdot).`,
	Run: func(cmd *cobra.Command, args []string) {
		displayEnvironmentVariables()
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}

// launcherEnvVars lists the environment variables the launcher reads
func launcherEnvVars() []EnvVar {
	return []EnvVar{
		{
			Name:         "HASHDOT_PROFILE",
			Description:  "Additional profile applied between the default profile and the script header",
			DefaultValue: "",
		},
		{
			Name:         "HASHDOT_PROFILE_DIR",
			Description:  "Directory searched for profile (.hdp) files",
			DefaultValue: constants.DefaultProfileDir,
		},
		{
			Name:         "HASHDOT_DEBUG",
			Description:  "Any value enables debug diagnostics on stderr",
			DefaultValue: "",
		},
		{
			Name:         "HASHDOT_LOG_LEVEL",
			Description:  "Logging level (trace, debug, info, warn, error)",
			DefaultValue: "warn",
		},
		{
			Name:         "LD_LIBRARY_PATH",
			Description:  "Library search path; extended from hashdot.vm.libpath via self re-exec",
			DefaultValue: "",
		},
	}
}

func displayEnvironmentVariables() {
	out := os.Stdout
	styles.PrintStyledln(out, styles.HeaderStyle, "Hashdot Environment Variables")

	for _, v := range launcherEnvVars() {
		styles.PrintStyled(out, styles.KeyStyle, v.Name)
		if cur, ok := os.LookupEnv(v.Name); ok {
			fmt.Fprint(out, " = ")
			styles.PrintStyledln(out, styles.ValueStyle, cur)
		} else if v.DefaultValue != "" {
			fmt.Fprint(out, " ")
			styles.PrintStyledln(out, styles.DefaultStyle, "(default: "+v.DefaultValue+")")
		} else {
			fmt.Fprint(out, " ")
			styles.PrintStyledln(out, styles.DefaultStyle, "(unset)")
		}
		fmt.Fprintf(out, "    %s\n", v.Description)
	}
}
