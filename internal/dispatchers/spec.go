package dispatchers

type GroupSpec struct {
	Name    string
	Summary string
	Aliases []string
}

type CommandSpec struct {
	Name    string
	Summary string
	Usage   string // defaults to a synopsis built from Flags and Args
	Aliases []string
	Flags   []FlagDescriptor
	Args    []ArgSpec
	Action  Action
}
