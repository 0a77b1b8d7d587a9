// Package executor runs external commands for the print adapter.
package executor

import (
	"context"
	"io"
	"os/exec"
)

// Command describes an external process and its standard streams.
// Fields are ordered to minimize memory padding.
type Command struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Program string
	Dir     string
	Args    []string
}

// NewShellCommand creates a command that runs line through sh -c,
// so configured commands may carry their own arguments and pipes.
func NewShellCommand(line string) *Command {
	return &Command{
		Program: "sh",
		Args:    []string{"-c", line},
	}
}

// Client runs commands on the host.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Run starts the command and waits for it to exit.
func (c *Client) Run(ctx context.Context, cmd *Command) error {
	// #nosec G204 - cmd.Program and cmd.Args come from the user's own config
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	execCmd.Stdin = cmd.Stdin
	execCmd.Stdout = cmd.Stdout
	execCmd.Stderr = cmd.Stderr
	return execCmd.Run()
}
