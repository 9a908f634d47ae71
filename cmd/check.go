package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hashdot/hashdot/internal/filesystem"
	"github.com/hashdot/hashdot/internal/launch"
	"github.com/hashdot/hashdot/internal/props"
	"github.com/hashdot/hashdot/internal/styles"
)

var checkCmd = &cobra.Command{
	Use:   "check script-file",
	Short: "Resolve a script's launch configuration without starting the VM",
	Long: `Compose the full property map for a script - default profile,
HASHDOT_PROFILE, included profiles and the script's own header - and
print the resolved properties and VM options. The VM library is not
loaded; use this to debug profiles and headers.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script := args[0]
		if err := filesystem.CheckFileExists(script); err != nil {
			return err
		}

		// Same resolution path as a real launch, with a synthetic argv.
		res, err := launch.Resolve([]string{"hashdot", script}, launchOptions())
		if err != nil {
			ExitOnError(err)
		}

		printResolution(res)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func printResolution(res *launch.Resolution) {
	out := os.Stdout

	styles.PrintStyledln(out, styles.HeaderStyle, "Resolved properties")
	for _, name := range res.Store.Names() {
		vals, _ := res.Store.Get(name)
		styles.PrintStyled(out, styles.KeyStyle, name)
		fmt.Fprint(out, " = ")
		styles.PrintStyledln(out, styles.ValueStyle, strings.Join(vals, " "))
	}

	opts, err := launch.VMOptions(res.Store)
	if err != nil {
		// Globs may legitimately miss on a build host; report and move on.
		styles.PrintStyledln(out, styles.WarningStyle, "VM options: "+err.Error())
		return
	}

	styles.PrintStyledln(out, styles.SectionStyle, "VM options:")
	for _, o := range opts {
		fmt.Fprintf(out, "  %s\n", o)
	}

	if main, ok := res.Store.Scalar(props.PropMain); ok {
		styles.PrintStyled(out, styles.SectionStyle, "Entry point:")
		fmt.Fprintf(out, " %s.main(String[])\n", main)
	} else {
		styles.PrintStyledln(out, styles.WarningStyle, "hashdot.main is missing or not scalar")
	}
}
