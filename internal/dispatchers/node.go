package dispatchers

import (
	"errors"
	"fmt"
	"io"

	"github.com/footprint-tools/terminus/internal/domain"
	"github.com/footprint-tools/terminus/internal/usage"
)

// ProgramName prefixes every usage line.
const ProgramName = "terminus"

// ErrEmptyGroup is returned when a group without subcommands is invoked.
var ErrEmptyGroup = errors.New("command group has no subcommands")

// Action is the behaviour of a leaf command. options already include the
// extra config registered for the command's path.
type Action func(args []string, options domain.Values) error

// CommandNode is a node of the command tree.
type CommandNode interface {
	Name() string
	Summary() string

	// CanHaveSubcommands reports whether the node groups other commands.
	CanHaveSubcommands() bool

	// FindSubcommand receives every remaining token and returns the matching
	// child together with the tokens left after the child consumed its own.
	// It returns a nil node when nothing matches.
	FindSubcommand(tokens []string) (CommandNode, []string)

	Invoke(args []string, options, extra domain.Values) error
	ShowUsage(w io.Writer) error
}

type FlagDescriptor struct {
	Name        string // option name without dashes
	ValueHint   string // empty for boolean flags
	Description string
}

type ArgSpec struct {
	Name        string
	Description string
	Required    bool
}

// Group is a composite node. Children keep their registration order.
type Group struct {
	name     string
	path     []string
	summary  string
	children []CommandNode
	index    map[string]CommandNode
	aliases  map[string]CommandNode
}

func (g *Group) Name() string    { return g.name }
func (g *Group) Summary() string { return g.summary }
func (g *Group) CanHaveSubcommands() bool {
	return len(g.children) > 0
}

// Subcommands returns the children in registration order.
func (g *Group) Subcommands() []CommandNode {
	return g.children
}

// Child returns the child registered under name or one of its aliases.
func (g *Group) Child(name string) (CommandNode, bool) {
	if child, ok := g.index[name]; ok {
		return child, true
	}
	child, ok := g.aliases[name]
	return child, ok
}

// FindSubcommand consumes one token, matching names before aliases.
func (g *Group) FindSubcommand(tokens []string) (CommandNode, []string) {
	if len(tokens) == 0 {
		return nil, tokens
	}
	child, ok := g.Child(tokens[0])
	if !ok {
		return nil, tokens
	}
	return child, tokens[1:]
}

// Invoke is only reached for a group that has no children.
func (g *Group) Invoke(_ []string, _, _ domain.Values) error {
	return fmt.Errorf("%s: %w", displayPath(g.path), ErrEmptyGroup)
}

func (g *Group) register(name string, aliases []string, node CommandNode) {
	if _, taken := g.Child(name); taken {
		panic(fmt.Sprintf("dispatchers: %q already registered under %q", name, displayPath(g.path)))
	}
	g.index[name] = node
	for _, alias := range aliases {
		if _, taken := g.Child(alias); taken {
			panic(fmt.Sprintf("dispatchers: alias %q already registered under %q", alias, displayPath(g.path)))
		}
		g.aliases[alias] = node
	}
	g.children = append(g.children, node)
}

// Command is an invocable leaf node.
type Command struct {
	name    string
	path    []string
	summary string
	usage   string
	aliases []string
	flags   []FlagDescriptor
	args    []ArgSpec
	action  Action
}

func (c *Command) Name() string             { return c.name }
func (c *Command) Summary() string          { return c.summary }
func (c *Command) CanHaveSubcommands() bool { return false }

func (c *Command) FindSubcommand(tokens []string) (CommandNode, []string) {
	return nil, tokens
}

// Invoke validates options and args, lays options over extra and runs the
// action. Commands declared without flags accept any option.
func (c *Command) Invoke(args []string, options, extra domain.Values) error {
	if c.flags != nil {
		if err := validateFlags(options, c.flags); err != nil {
			return err
		}
	}

	if err := validateArgs(c.args, args); err != nil {
		return err
	}

	merged := extra.Clone()
	merged.Merge(options)

	return c.action(args, merged)
}

func validateFlags(options domain.Values, flags []FlagDescriptor) error {
	valid := make(map[string]bool, len(flags))
	for _, f := range flags {
		valid[f.Name] = true
	}

	for _, name := range options.Keys() {
		if !valid[name] {
			return usage.InvalidFlag("--" + name)
		}
	}
	return nil
}

func validateArgs(spec []ArgSpec, args []string) error {
	for i, a := range spec {
		if a.Required && i >= len(args) {
			return usage.MissingArgument(a.Name)
		}
	}
	return nil
}
