package dispatchers

import (
	"strings"

	"github.com/footprint-tools/terminus/internal/usage"
)

const defaultSuggestionsCount = 3

// Resolution is the outcome of walking the tree.
type Resolution struct {
	Node CommandNode
	Path []string // tokens consumed, as typed
	Args []string // tokens left for the command
}

// Name is the lookup key for extra config: Path joined with single spaces.
func (r Resolution) Name() string {
	return strings.Join(r.Path, " ")
}

// Resolve walks the tree from root following tokens until it reaches a
// leaf or runs out of tokens. Running out of tokens on a group is not an
// error; callers check CanHaveSubcommands on the result.
func Resolve(root CommandNode, tokens []string) (Resolution, error) {
	current := root
	path := []string{}
	remaining := tokens

	for len(remaining) > 0 && current.CanHaveSubcommands() {
		path = append(path, remaining[0])

		next, rest := current.FindSubcommand(remaining)
		if next == nil {
			suggestions := FindSimilarCommands(remaining[0], current, defaultSuggestionsCount)
			return Resolution{}, usage.CommandNotFound(strings.Join(path, " "), suggestions...)
		}

		current, remaining = next, rest
	}

	args := make([]string, len(remaining))
	copy(args, remaining)

	return Resolution{Node: current, Path: path, Args: args}, nil
}
