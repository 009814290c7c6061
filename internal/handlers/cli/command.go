package cli

import "context"

// CommandHandler defines the interface for console commands
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetUsage returns a one-line usage string
	GetUsage() string

	// Handle processes the command arguments
	Handle(ctx context.Context, c *Console, args []string) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name  string
	Usage string
}

// GetName returns the command name
func (b *BaseCommand) GetName() string {
	return b.Name
}

// GetUsage returns the usage string
func (b *BaseCommand) GetUsage() string {
	return b.Usage
}
