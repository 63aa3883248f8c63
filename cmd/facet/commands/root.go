package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"facet/internal/app"
	"facet/internal/config"
	"facet/internal/log"
)

var (
	home     string
	logLevel string
	appCtx   *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:           "facet",
		Short:        "Evaluate fMRI artifact correction on EEG recordings",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.FromEnv()
			if err != nil {
				return err
			}
			if home == "" {
				home = env.Home
			}
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".facet")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			if logLevel == "" {
				logLevel = env.LogLevel
			}
			log.Configure(log.Config{Level: logLevel})

			appCtx = app.New(app.Config{Home: home})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "facet dir (default ~/.facet, env FACET_HOME)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(infoCmd(), triggersCmd(), evaluateCmd(), resultsCmd())
	return root.Execute()
}
