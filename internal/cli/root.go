// Package cli provides the cobra commands for toaster: the interactive host,
// a scripted HTML render and a config dump.
package cli

import (
	"time"

	"github.com/riordanpawley/toaster/internal/config"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	configPath string
	logFile    string
	position   string
	direction  string
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "toaster",
		Short: "Stacked toast notifications in the terminal",
		Long: `toaster hosts a toast notification container in the terminal.

Press n to show a toast, ctrl+x to dismiss the current one, ctrl+d to
dismiss it without waiting for the transition, q to quit.`,
		Example: `  # Interactive host, toasts on the right, newest on top
  toaster --position right --direction from-top

  # Print the container markup after showing three toasts
  toaster render --count 3 --title Build --content "<b>done</b>"`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := flags.dependencies()
			if err != nil {
				return err
			}
			defer deps.Close()
			return RunCommand(deps)
		},
	}

	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a TOML config file")
	root.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	root.PersistentFlags().StringVar(&flags.position, "position", "", "Container position: left or right")
	root.PersistentFlags().StringVar(&flags.direction, "direction", "", "Stacking direction: from-bottom or from-top")

	root.AddCommand(newRenderCmd(flags), newConfigCmd(flags))
	return root
}

func newRenderCmd(flags *globalFlags) *cobra.Command {
	opts := RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Show toasts on a virtual clock and print the resulting markup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := flags.dependencies()
			if err != nil {
				return err
			}
			defer deps.Close()
			return RenderCommand(deps, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1, "Number of toasts to show")
	cmd.Flags().DurationVar(&opts.Advance, "advance", 10*time.Millisecond, "Virtual time to advance after showing")
	cmd.Flags().StringVar(&opts.Title, "title", "Toast", "Toast title")
	cmd.Flags().StringVar(&opts.Content, "content", "", "Toast content markup (not escaped)")
	return cmd
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := flags.dependencies()
			if err != nil {
				return err
			}
			defer deps.Close()
			return ConfigCommand(deps, cmd.OutOrStdout())
		},
	}
}

func (f *globalFlags) dependencies() (*Dependencies, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.position != "" {
		cfg.Container.Position = f.position
	}
	if f.direction != "" {
		cfg.Container.Direction = f.direction
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logFile := f.logFile
	if logFile == "" {
		logFile = cfg.Log.File
	}
	return NewDependencies(cfg, logFile)
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
