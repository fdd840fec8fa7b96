package dispatchers

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/footprint-tools/terminus/internal/ui/style"
)

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	// Find where the command ends (first [ or <)
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

// writeRows writes name/description pairs with the names padded to a
// common width. Padding is applied before styling so escape codes do not
// skew the columns.
func writeRows(out *bytes.Buffer, rows [][2]string) {
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	for _, r := range rows {
		fmt.Fprintf(out, "   %s   %s\n", style.Info(fmt.Sprintf("%-*s", width, r[0])), r[1])
	}
}

// ShowUsage writes the group's synopsis and its subcommands.
func (g *Group) ShowUsage(w io.Writer) error {
	var out bytes.Buffer

	out.WriteString(style.Header("USAGE"))
	out.WriteString("\n   ")
	out.WriteString(formatUsage(displayPath(g.path) + " <command>"))
	out.WriteString("\n\n")

	if g.summary != "" {
		out.WriteString(g.summary)
		out.WriteString("\n\n")
	}

	if len(g.children) > 0 {
		out.WriteString(style.Header("COMMANDS"))
		out.WriteString("\n")

		rows := make([][2]string, 0, len(g.children))
		for _, child := range g.children {
			rows = append(rows, [2]string{child.Name(), child.Summary()})
		}
		writeRows(&out, rows)
		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "See '%s help %s<command>' for more information on a specific command.\n",
		ProgramName, pathPrefix(g.path))

	_, err := w.Write(out.Bytes())
	return err
}

// ShowUsage writes the command's synopsis, arguments and flags.
func (c *Command) ShowUsage(w io.Writer) error {
	var out bytes.Buffer

	out.WriteString(style.Header("USAGE"))
	out.WriteString("\n   ")
	out.WriteString(formatUsage(c.usage))
	out.WriteString("\n\n")

	if c.summary != "" {
		out.WriteString(c.summary)
		out.WriteString("\n\n")
	}

	if len(c.aliases) > 0 {
		out.WriteString(style.Header("ALIASES"))
		out.WriteString("\n   ")
		out.WriteString(strings.Join(c.aliases, ", "))
		out.WriteString("\n\n")
	}

	if len(c.args) > 0 {
		out.WriteString(style.Header("ARGUMENTS"))
		out.WriteString("\n")

		rows := make([][2]string, 0, len(c.args))
		for _, a := range c.args {
			desc := a.Description
			if !a.Required {
				desc += " (optional)"
			}
			rows = append(rows, [2]string{"<" + a.Name + ">", desc})
		}
		writeRows(&out, rows)
		out.WriteString("\n")
	}

	if len(c.flags) > 0 {
		out.WriteString(style.Header("FLAGS"))
		out.WriteString("\n")

		rows := make([][2]string, 0, len(c.flags))
		for _, f := range c.flags {
			name := "--" + f.Name
			if f.ValueHint != "" {
				name += "=" + f.ValueHint
			}
			rows = append(rows, [2]string{name, f.Description})
		}
		writeRows(&out, rows)
		out.WriteString("\n")
	}

	_, err := w.Write(out.Bytes())
	return err
}

func pathPrefix(path []string) string {
	if len(path) == 0 {
		return ""
	}
	return strings.Join(path, " ") + " "
}
