package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	// Register the built-in components and scripts with the engine.
	_ "safeget/internal/components"
	_ "safeget/internal/scripts"

	"safeget/internal/engine"
	"safeget/internal/scenefile"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns a fresh command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "safeget",
		Short: "Inspect scenes with null-safe component lookups",
		Long: `safeget loads a YAML scene and runs the same component lookups game
scripts use, reporting missing or destroyed components explicitly.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.initConfig(cmd)
			return a.initLogging()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.safeget/config.yaml)")
	flags.String("scene", "", "scene file to load")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	_ = a.v.BindPFlag("scene", flags.Lookup("scene"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))

	root.AddCommand(
		newTreeCmd(a),
		newLookupCmd(a),
		newReleaseCmd(a),
		newScriptCmd(),
	)
	return root
}

// initConfig reads in config file and ENV variables if set
func (a *app) initConfig(cmd *cobra.Command) {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(filepath.Join(home, ".safeget"))
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("SAFEGET")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not read config: %v\n", err)
		}
	}
}

func (a *app) initLogging() error {
	level, err := zapcore.ParseLevel(a.v.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	engine.SetLogger(logger)
	return nil
}

func (a *app) loadScene() (*engine.Scene, error) {
	path := a.v.GetString("scene")
	if path == "" {
		return nil, errors.New("no scene given: pass --scene or set SAFEGET_SCENE")
	}
	return scenefile.Load(path)
}

func findObject(scene *engine.Scene, name string) (*engine.GameObject, error) {
	g := scene.FindByName(name)
	if g == nil {
		return nil, fmt.Errorf("object %q not found in scene %q", name, scene.Name)
	}
	return g, nil
}
