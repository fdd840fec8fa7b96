// Package runner drives one invocation of terminus: it merges the config
// layers, builds the command tree, resolves the requested command and turns
// any failure into a single logged message and exit status 1.
package runner

import (
	"errors"

	"github.com/footprint-tools/terminus/internal/app"
	"github.com/footprint-tools/terminus/internal/cli"
	"github.com/footprint-tools/terminus/internal/config"
	"github.com/footprint-tools/terminus/internal/dispatchers"
	"github.com/footprint-tools/terminus/internal/domain"
	"github.com/footprint-tools/terminus/internal/extensions"
	"github.com/footprint-tools/terminus/internal/log"
	"github.com/footprint-tools/terminus/internal/usage"
)

// DefaultCommand replaces an empty token list.
const DefaultCommand = "help"

// ConfigBuilder produces the merged configuration for argv.
type ConfigBuilder interface {
	Build(argv []string) (*config.Result, error)
}

// CommandLoader adds external commands to the tree before resolution.
type CommandLoader interface {
	LoadCommand(root *dispatchers.Group, name string) error
	LoadFile(root *dispatchers.Group, path string) error
}

// Options configures a Runner. Zero fields get production defaults.
type Options struct {
	Stack     ConfigBuilder
	Loader    CommandLoader
	BuildTree func(app *domain.Application) *dispatchers.Group
	App       app.Options

	// Logger replaces the logger built from log_level and log_file.
	Logger domain.Logger
}

// Runner executes a single command line. It is not reusable.
type Runner struct {
	opts    Options
	resolve func(root dispatchers.CommandNode, tokens []string) (dispatchers.Resolution, error)

	result *config.Result
	app    *domain.Application
	root   *dispatchers.Group
	logger domain.Logger
}

// New returns a Runner with defaults filled in.
func New(opts Options) *Runner {
	defaults := app.DefaultOptions()
	if opts.App.Stdout == nil {
		opts.App.Stdout = defaults.Stdout
	}
	if opts.App.Stderr == nil {
		opts.App.Stderr = defaults.Stderr
	}
	if opts.App.IsTerminal == nil {
		opts.App.IsTerminal = defaults.IsTerminal
	}
	if opts.Logger != nil {
		opts.App.Logger = opts.Logger
	}
	if opts.Stack == nil {
		opts.Stack = config.NewStack()
	}
	if opts.Loader == nil {
		opts.Loader = extensions.NewLoader(opts.App.Stdout, opts.App.Stderr)
	}
	if opts.BuildTree == nil {
		opts.BuildTree = cli.BuildTree
	}

	return &Runner{
		opts:    opts,
		resolve: dispatchers.Resolve,
	}
}

// Run executes argv (without the program name) and returns the process
// exit status: 0 on success or when usage was shown, 1 on any error.
func (r *Runner) Run(argv []string) int {
	err := r.run(argv)
	if err != nil {
		r.fail(err)
	}
	if cerr := app.Close(r.app); cerr != nil {
		log.Debug("runner: %v", cerr)
	}
	if err != nil {
		return usage.ExitFailure
	}
	return 0
}

func (r *Runner) run(argv []string) error {
	if err := r.configure(argv); err != nil {
		return err
	}

	tokens := r.result.Args
	if len(tokens) == 0 {
		tokens = []string{DefaultCommand}
	}

	if err := r.loadCommands(tokens[0]); err != nil {
		return err
	}
	if err := dispatchers.Validate(r.root); err != nil {
		return err
	}

	shown, err := r.showGroupUsage(tokens)
	if err != nil || shown {
		return err
	}

	return r.RunCommand(tokens, r.result.Options)
}

// configure merges the config layers once and builds everything that
// depends on them.
func (r *Runner) configure(argv []string) error {
	res, err := r.opts.Stack.Build(argv)
	if err != nil {
		return err
	}
	r.result = res

	r.app = app.New(res, r.opts.App)
	r.logger = r.app.Logger
	if l, ok := r.logger.(*log.Logger); ok {
		log.SetDefault(l)
	}
	for _, path := range res.Files {
		r.logger.Debug("config: loaded %s", path)
	}

	r.root = r.opts.BuildTree(r.app)
	return nil
}

// loadCommands registers the external command named by the first token
// and every command declared by a required file.
func (r *Runner) loadCommands(first string) error {
	if err := r.opts.Loader.LoadCommand(r.root, first); err != nil {
		return err
	}

	for _, path := range r.result.Config.Strings(domain.KeyRequire) {
		if err := r.opts.Loader.LoadFile(r.root, path); err != nil {
			var ue *usage.Error
			if errors.As(err, &ue) && ue.Kind == usage.ErrConfigLoad {
				return err
			}
			return usage.ConfigLoad(path, err)
		}
	}
	return nil
}

// showGroupUsage shows usage when tokens stop on a command group. It
// reports whether usage was shown. A command-not-found error is dropped
// here and raised again by RunCommand; any other error is returned.
func (r *Runner) showGroupUsage(tokens []string) (bool, error) {
	res, err := r.resolve(r.root, tokens)
	if err != nil {
		var ue *usage.Error
		if errors.As(err, &ue) && ue.Kind == usage.ErrCommandNotFound {
			r.logger.Debug("resolve: %v", err)
			return false, nil
		}
		return false, err
	}

	if !res.Node.CanHaveSubcommands() {
		return false, nil
	}
	return true, res.Node.ShowUsage(r.opts.App.Stdout)
}

// RunCommand resolves tokens and invokes the command with options and the
// extra config registered for the exact path that was typed.
func (r *Runner) RunCommand(tokens []string, options domain.Values) error {
	res, err := r.resolve(r.root, tokens)
	if err != nil {
		return err
	}

	extra := r.result.ExtraFor(res.Name())
	r.logger.Debug("invoking %q with args %v", res.Name(), res.Args)

	return res.Node.Invoke(res.Args, options.Clone(), extra)
}

// fail reports err through the logger exactly once.
func (r *Runner) fail(err error) {
	logger := r.logger
	if logger == nil {
		logger = r.opts.Logger
	}
	if logger == nil {
		logger = log.New(r.opts.App.Stderr, log.LevelWarn)
	}

	var ue *usage.Error
	if errors.As(err, &ue) {
		logger.Error(ue.Template, ue.Replacements)
		return
	}
	logger.Error(err.Error(), nil)
}
