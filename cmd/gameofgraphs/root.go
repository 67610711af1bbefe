package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gameofgraphs/internal/config"
)

const (
	linksUsage = "Usage: gameofgraphs --links fr_file person1 person2"
	plotsUsage = "Usage: gameofgraphs --plots fr_file cr_file n"
)

// app carries what every command needs once flags and config are resolved.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), cfgFile: config.DefaultPath}
	var links, plots bool

	root := &cobra.Command{
		Use:          "gameofgraphs",
		Short:        "Friendship distances and conspiracies in the realm",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case links && plots:
				fmt.Fprintln(cmd.OutOrStdout(), "Choose one of --links or --plots.")
				return nil
			case links:
				return a.runLinks(cmd, args, false)
			case plots:
				return a.runPlots(cmd, args)
			case len(args) == 0:
				return cmd.Help()
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "Unknown mode. Use --links or --plots.")
				return nil
			}
		},
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")

	root.Flags().BoolVar(&links, "links", false, "degree of separation: fr_file person1 person2")
	root.Flags().BoolVar(&plots, "plots", false, "conspiracy check: fr_file cr_file n")
	// Everything after the first argument is positional, so n may be -1.
	root.Flags().SetInterspersed(false)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", config.DefaultPath, "config file")
	pf.BoolP("verbose", "v", false, "debug logging on stderr")
	pf.String("protected", "", "person to protect (default from config)")
	_ = a.v.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = a.v.BindPFlag("protected", pf.Lookup("protected"))

	installHelp(root)

	root.AddCommand(linksCmd(a))
	root.AddCommand(plotsCmd(a))
	root.AddCommand(validateCmd(a))
	root.AddCommand(serveCmd(a))
	root.AddCommand(initCmd(a))
	root.AddCommand(versionCmd())
	return root
}

// load reads the config file, then lets GAMEOFGRAPHS_* variables and flags
// override it.
func (a *app) load(cmd *cobra.Command) error {
	var cfg *config.Config
	var err error
	// init may be pointed at a file that does not exist yet.
	explicit := cmd.Flags().Changed("config") && cmd.Name() != "init"
	if explicit {
		cfg, err = config.Load(a.cfgFile)
	} else {
		cfg, err = config.LoadOrDefault(a.cfgFile)
	}
	var ignored error
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("config file %s not found", a.cfgFile)
		case explicit:
			return err
		}
		// An unusable implicit config never blocks the relation commands.
		ignored = err
		cfg = config.Default()
	}

	a.v.SetEnvPrefix("GAMEOFGRAPHS")
	a.v.AutomaticEnv()
	a.v.SetDefault("protected", cfg.Defense.Protected)
	a.v.SetDefault("radius", cfg.Defense.Radius)
	a.v.SetDefault("log_level", cfg.Log.Level)
	a.v.SetDefault("log_format", cfg.Log.Format)

	if p := a.v.GetString("protected"); p != "" {
		cfg.Defense.Protected = p
	}
	cfg.Defense.Radius = a.v.GetInt("radius")
	cfg.Log.Level = a.v.GetString("log_level")
	cfg.Log.Format = a.v.GetString("log_format")
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("applying overrides: %w", err)
	}

	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg, a.v.GetBool("verbose"))
	if ignored != nil {
		a.logger.Warn("ignoring config file, using defaults", "path", a.cfgFile, "error", ignored)
	}
	a.logger.Debug("config loaded",
		"path", a.cfgFile,
		"protected", cfg.Defense.Protected,
		"radius", cfg.Defense.Radius,
		"driver", cfg.Source.Driver,
	)
	return nil
}
