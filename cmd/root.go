package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hashdot/hashdot/internal/launch"
	"github.com/hashdot/hashdot/internal/logging"
	"github.com/hashdot/hashdot/internal/params"
	"github.com/hashdot/hashdot/internal/props"
)

var cfgFile string

// rootCmd is the canonical invocation: hashdot script-file [args...].
// Flag parsing is disabled so every argument after the script path
// passes through to the hosted program untouched.
var rootCmd = &cobra.Command{
	Use:   "hashdot script-file [script-args...]",
	Short: "Launch a script on an embedded Java VM",
	Long: `Hashdot launches a script whose leading comment block carries "#."
directives (classpath, main class, VM options, environment) on a Java
VM loaded in-process. Reusable directive sets live as named profiles in
the profile directory; a symlinked alias name selects its profile
automatically.`,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.InitWithLevel(params.LogLevel())
		logging.Debug("logging initialized", "level", params.LogLevel())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
			return cmd.Help()
		}
		return launch.Run(os.Args, launchOptions())
	},
}

// Execute runs the canonical-mode command tree
func Execute() error {
	return rootCmd.Execute()
}

// RunAlias is the entry for an invocation through a symlinked name: the
// whole argv belongs to the aliased program, so cobra never sees it.
func RunAlias() {
	initConfig()
	logging.InitWithLevel(params.LogLevel())
	ExitOnError(launch.Run(os.Args, launchOptions()))
}

func launchOptions() launch.Options {
	return launch.Options{
		ProfileDir: params.ProfileDir(),
		EnvProfile: params.EnvProfile(),
	}
}

// ExitOnError prints a pipeline error and exits with its mapped code
func ExitOnError(err error) {
	if err == nil {
		return
	}
	logging.UserErrorf("%v", err)
	var parseErr *props.ParseError
	if errors.As(err, &parseErr) {
		fmt.Fprintln(os.Stderr, parseErr.Indicator())
	}
	os.Exit(launch.ExitCode(err))
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig reads in config file and HASHDOT_* environment variables
func initConfig() {
	viper.SetEnvPrefix("HASHDOT")
	viper.AutomaticEnv()

	viper.SetDefault("log_level", "warn")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath("/etc/hashdot")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hashdot")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
		// No config file is fine - env vars and defaults apply.
	}
}
