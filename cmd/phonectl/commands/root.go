package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"phonectl/internal/app"
)

var (
	home       string
	configPath string
	verbose    bool
	sc         *app.SessionContext
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "phonectl",
		Short:        "Control an Android phone over wireless adb",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			userHome, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			if home == "" {
				home = filepath.Join(userHome, ".phonectl")
			}
			if configPath == "" {
				configPath = filepath.Join(home, app.ConfigFileName)
			}

			cfg, err := app.LoadConfig(configPath, home, userHome)
			if err != nil {
				return err
			}
			setupLogging(cfg.Level())

			sc, err = app.NewSessionContext(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.phonectl)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		setupCmd(),
		configCmd(),
		unlockCmd(),
		wakeCmd(),
		answerCmd(),
		endCmd(),
		reconnectCmd(),
		statusCmd(),
		devicesCmd(),
	)
	return root
}

func setupLogging(level zerolog.Level) {
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
}
