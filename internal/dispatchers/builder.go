package dispatchers

import (
	"fmt"
	"strings"
)

// NewRoot creates the root group of a command tree.
func NewRoot(summary string) *Group {
	return &Group{
		name:    ProgramName,
		path:    []string{},
		summary: summary,
		index:   make(map[string]CommandNode),
		aliases: make(map[string]CommandNode),
	}
}

// NewGroup registers a command group under parent.
// It panics if the name or an alias is already taken.
func NewGroup(parent *Group, spec GroupSpec) *Group {
	g := &Group{
		name:    spec.Name,
		path:    childPath(parent, spec.Name),
		summary: spec.Summary,
		index:   make(map[string]CommandNode),
		aliases: make(map[string]CommandNode),
	}
	parent.register(spec.Name, spec.Aliases, g)
	return g
}

// NewCommand registers a leaf command under parent.
// It panics if the name or an alias is already taken, or Action is nil.
func NewCommand(parent *Group, spec CommandSpec) *Command {
	if spec.Action == nil {
		panic(fmt.Sprintf("dispatchers: command %q has no action", spec.Name))
	}

	c := &Command{
		name:    spec.Name,
		path:    childPath(parent, spec.Name),
		summary: spec.Summary,
		usage:   spec.Usage,
		aliases: spec.Aliases,
		flags:   spec.Flags,
		args:    spec.Args,
		action:  spec.Action,
	}
	if c.usage == "" {
		c.usage = synopsis(c)
	}
	parent.register(spec.Name, spec.Aliases, c)
	return c
}

func childPath(parent *Group, name string) []string {
	path := make([]string, 0, len(parent.path)+1)
	path = append(path, parent.path...)
	return append(path, name)
}

func synopsis(c *Command) string {
	parts := []string{displayPath(c.path)}

	for _, f := range c.flags {
		if f.ValueHint != "" {
			parts = append(parts, fmt.Sprintf("[--%s=%s]", f.Name, f.ValueHint))
		} else {
			parts = append(parts, fmt.Sprintf("[--%s]", f.Name))
		}
	}

	for _, a := range c.args {
		if a.Required {
			parts = append(parts, "<"+a.Name+">")
		} else {
			parts = append(parts, "[<"+a.Name+">]")
		}
	}

	return strings.Join(parts, " ")
}

func displayPath(path []string) string {
	if len(path) == 0 {
		return ProgramName
	}
	return ProgramName + " " + strings.Join(path, " ")
}

// Validate reports groups that have no subcommands.
func Validate(root CommandNode) error {
	g, ok := root.(*Group)
	if !ok {
		return nil
	}
	if len(g.children) == 0 {
		return fmt.Errorf("%s: %w", displayPath(g.path), ErrEmptyGroup)
	}
	for _, child := range g.children {
		if err := Validate(child); err != nil {
			return err
		}
	}
	return nil
}
