package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/texpack/internal/config"
	"github.com/provide-io/texpack/pkg/logging"
	"github.com/provide-io/texpack/pkg/platform"
	"github.com/provide-io/texpack/pkg/texture"
	"github.com/provide-io/texpack/pkg/utils/flags"
	"github.com/provide-io/texpack/pkg/utils/pathname"
	"github.com/spf13/cobra"
)

// app carries state shared by subcommands. goos and info are overridden in tests.
type app struct {
	rootFlag     string
	logLevelFlag string
	versionFlag  bool

	goos string
	info platform.InfoProvider

	cfg       *config.Config
	logger    hclog.Logger
	logOutput io.WriteCloser
}

// closeLog releases the log output opened by the root command, if any.
func (a *app) closeLog() error {
	if a.logOutput == nil {
		return nil
	}
	err := a.logOutput.Close()
	a.logOutput = nil
	return err
}

func (a *app) locator() *platform.Locator {
	loc := platform.NewLocator(a.cfg.Root, a.logger)
	if a.goos != "" {
		loc.GOOS = a.goos
	}
	if a.info != nil {
		loc.Info = a.info
	}
	return loc
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "texpack",
		Short:         "Inspect texpack platform binaries, images and tool flags",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.rootFlag, a.logLevelFlag)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if err := a.closeLog(); err != nil {
				return err
			}
			a.logOutput = logging.OpenOutput()
			a.logger = logging.NewLogger("texpack", cfg.LogLevel, a.logOutput)
			a.logger.Debug("Configuration loaded", "root", cfg.Root, "log_level", cfg.LogLevel)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.versionFlag {
				fmt.Fprintf(cmd.OutOrStdout(), "texpack %s\n", version)
				fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", getBuildTimestamp())
				return nil
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.rootFlag, "root", "", "Project root containing bin/<platform> (defaults to $TEXPACK_ROOT, then CWD)")
	rootCmd.PersistentFlags().StringVar(&a.logLevelFlag, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&a.versionFlag, "version", "V", false, "Show version information")

	rootCmd.AddCommand(
		newTagCmd(a),
		newBinDirCmd(a),
		newWhichCmd(a),
		newSizeCmd(a),
		newMipsCmd(a),
		newNameCmd(),
		newExtCmd(),
		newFlagsCmd(),
	)
	return rootCmd
}

func newTagCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tag",
		Short: "Print the platform tag of this host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := a.locator().Tag(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tag)
			return nil
		},
	}
}

func newBinDirCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bindir",
		Short: "Print the bundled binary directory for this host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.locator().BinaryDirectory(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

func newWhichCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "which <tool>",
		Short: "Print the path of a bundled tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.locator().Executable(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newSizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "size <image>...",
		Short: "Print image dimensions and mip chain depth",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				size, err := texture.ImageSize(path)
				if err != nil {
					a.logger.Error("❌ Failed to read image header", "path", path, "error", err)
					return err
				}
				levels := 0
				if size.Width > 0 && size.Height > 0 {
					levels = size.MipChainLevels()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %dx%d levels=%d\n", path, size.Width, size.Height, levels)
			}
			return nil
		},
	}
}

func newMipsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mips <value>",
		Short: "Print the mip chain depth for a largest dimension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			if value < 1 {
				return fmt.Errorf("%w: got %d", texture.ErrInvalidMipValue, value)
			}
			fmt.Fprintln(cmd.OutOrStdout(), texture.MipChainLevels(value))
			return nil
		},
	}
}

func newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <path>",
		Short: "Print the file name without its extension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), pathname.Name(args[0]))
			return nil
		},
	}
}

func newExtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ext <path>",
		Short: "Print the file extension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), pathname.Extension(args[0]))
			return nil
		},
	}
}

func newFlagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flags <flag>...",
		Short: "Print tool arguments for custom flags, one per line",
		Long: `Print tool arguments for custom flags, one per line.

Each flag is given as "name" or "name value"; names get a single dash and
values are split off on spaces:

  texpack flags mipmaps "q 255"   =>  -mipmaps, -q, 255`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range flags.Args(args) {
				fmt.Fprintln(cmd.OutOrStdout(), arg)
			}
			return nil
		},
	}
}
