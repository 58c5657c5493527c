package finder

// Config holds configuration for the external fuzzy finder.
type Config struct {
	// Command is the finder executable invoked for interactive selection.
	Command string `mapstructure:"command" default:"fzf"`
}
