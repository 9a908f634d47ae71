package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hashdot/hashdot/internal/constants"
)

// These variables will be set during the build using ldflags
var (
	buildCommit = "none"
	buildTime   = "unknown"
)

var shortOutput bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if shortOutput {
			fmt.Println(constants.Version)
			return
		}

		versionColor := color.New(color.FgCyan, color.Bold)
		buildColor := color.New(color.FgYellow)
		commitColor := color.New(color.FgGreen)
		osArchColor := color.New(color.FgMagenta)
		whiteColor := color.New(color.FgWhite)
		pathColor := color.New(color.FgBlue)

		whiteColor.Printf("Version:     ")
		versionColor.Printf("%s\n", constants.Version)

		whiteColor.Printf("Built:       ")
		buildColor.Printf("%s\n", buildTime)

		whiteColor.Printf("Commit:      ")
		commitColor.Printf("%s\n", buildCommit)

		whiteColor.Printf("OS/Arch:     ")
		osArchColor.Printf("%s/%s\n", runtime.GOOS, runtime.GOARCH)

		whiteColor.Printf("Go:          ")
		osArchColor.Printf("%s\n", runtime.Version())

		exe, err := os.Executable()
		exePath := "Unknown"
		if err == nil {
			exePath, _ = filepath.Abs(exe)
		}
		whiteColor.Printf("Binary:      ")
		pathColor.Printf("%s\n", exePath)

		whiteColor.Printf("Profile dir: ")
		pathColor.Printf("%s\n", constants.DefaultProfileDir)
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&shortOutput, "short", "n", false, "Print only version number")
	rootCmd.AddCommand(versionCmd)
}
