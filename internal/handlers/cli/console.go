package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/KirkDiggler/dragontiger/internal/services/tracker"
	"github.com/rs/zerolog"
)

// errQuit stops the read loop without reporting an error
var errQuit = errors.New("quit")

// Console is a line-oriented front end for a single tracked table
type Console struct {
	service  tracker.Service
	session  *tracker.Session
	commands map[string]CommandHandler
	in       io.Reader
	out      io.Writer
	logger   zerolog.Logger
}

// Config holds the configuration for the console
type Config struct {
	// Tracker service
	Service tracker.Service

	// Settings for the initial session
	Settings tracker.Settings

	// In and Out default to nothing; both are required
	In  io.Reader
	Out io.Writer

	// Logger is optional
	Logger *zerolog.Logger
}

// New creates a console and starts its session
func New(ctx context.Context, cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Service == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("input and output cannot be nil")
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	output, err := cfg.Service.NewSession(ctx, &tracker.NewSessionInput{
		Settings: cfg.Settings,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	c := &Console{
		service:  cfg.Service,
		session:  output.Session,
		commands: make(map[string]CommandHandler),
		in:       cfg.In,
		out:      cfg.Out,
		logger:   logger.With().Str("component", "console").Logger(),
	}

	for _, cmd := range defaultCommands() {
		c.commands[cmd.GetName()] = cmd
	}

	return c, nil
}

// Run reads commands until EOF, quit, or ctx is cancelled. Command errors are
// printed and the loop continues.
func (c *Console) Run(ctx context.Context) error {
	if err := c.Execute(ctx, "show"); err != nil {
		c.printError(err)
	}

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, promptStyle.Render("dt> "))

		if !scanner.Scan() {
			return scanner.Err()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := c.Execute(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			c.printError(err)
		}
	}
}

// Execute runs a single command line
func (c *Console) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name := strings.ToLower(fields[0])
	cmd, ok := c.commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q, try help", fields[0])
	}

	c.logger.Debug().Str("command", name).Strs("args", fields[1:]).Msg("executing command")
	return cmd.Handle(ctx, c, fields[1:])
}

// Session exposes the console's session for inspection
func (c *Console) Session() *tracker.Session {
	return c.session
}

func (c *Console) printError(err error) {
	fmt.Fprintln(c.out, errorStyle.Render("error: "+err.Error()))
}

func (c *Console) commandNames() []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
