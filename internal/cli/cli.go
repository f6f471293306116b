package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/viewlayout/pkg/buildinfo"
	"github.com/matzehuels/viewlayout/pkg/cache"
	"github.com/matzehuels/viewlayout/pkg/errors"
	"github.com/matzehuels/viewlayout/pkg/observability"
	"github.com/matzehuels/viewlayout/pkg/scene"
)

// appName is the application name used for directories and display.
const appName = "viewlayout"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer
}

// New creates a new CLI instance logging to w at level. Command output goes
// to the command's standard output.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), out: os.Stdout}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// ReportError prints err to w. Coded errors lose their code prefix; the
// code is logged at debug level instead.
func (c *CLI) ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if code := errors.GetCode(err); code != "" {
		c.Logger.Debug("command failed", "code", code)
	}
	printError(w, "%s", errorMessage(err))
}

// errorMessage renders err without the code prefix of a top-level
// *errors.Error. Errors wrapped with fmt.Errorf keep their full text.
func errorMessage(err error) string {
	e, ok := err.(*errors.Error)
	if !ok {
		return err.Error()
	}
	msg := errors.UserMessage(e)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running any subcommand routes layout and cache events to the logger.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "viewlayout",
		Short:        "Viewlayout builds and inspects layout constraint scenes",
		Long:         `Viewlayout declares views and the layout constraints between them in TOML, applies them through mutable named constraints and shows the result as tables, graphs or an interactive browser.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.out = cmd.OutOrStdout()
			hooks := &logHooks{logger: c.Logger}
			observability.SetLayoutHooks(hooks)
			observability.SetCacheHooks(hooks)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.applyCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Scene Helpers
// =============================================================================

// loadScene reads the scene at path, or the embedded demo when path is empty.
func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Default(), nil
	}
	return scene.Load(path)
}

// buildScene loads and builds a scene, logging the elapsed time.
func (c *CLI) buildScene(path string) (*scene.Result, error) {
	s, err := loadScene(path)
	if err != nil {
		return nil, err
	}
	p := newProgress(c.Logger)
	r, err := scene.Build(s, scene.Options{Logger: c.Logger})
	if err != nil {
		return nil, err
	}
	p.done("Built " + sceneName(r, path))
	return r, nil
}

func sceneName(r *scene.Result, path string) string {
	switch {
	case r.Name != "":
		return r.Name
	case path != "":
		return path
	default:
		return "scene"
	}
}

// =============================================================================
// SVG Cache
// =============================================================================

// newStore opens the SVG cache, falling back to no caching when disabled or
// when the cache directory is unavailable.
func (c *CLI) newStore(noCache bool) cache.Store {
	if noCache {
		return cache.NullStore{}
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NullStore{}
	}
	store, err := cache.NewFileStore("svg", filepath.Join(dir, "svg"), ".svg")
	if err != nil {
		c.Logger.Debug("svg cache unavailable", "err", err)
		return cache.NullStore{}
	}
	return store
}

// cacheDir returns the cache directory using XDG standard (~/.cache/viewlayout/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
