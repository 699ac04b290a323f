package main

import (
	"context"
	"io"

	"github.com/ewozniak/clipvault"
	"github.com/ewozniak/clipvault/save"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Vault  string
	Queue  clipvault.QueueService
	Saver  *save.Saver
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Save    SaveCmd    `cmd:"" help:"Save an article URL to the vault"`
	Process ProcessCmd `cmd:"" help:"Process all queued URLs"`
	Queue   QueueCmd   `cmd:"" help:"Inspect or clear the URL queue"`

	Vault   string `short:"v" env:"CLIPVAULT_ROOT" help:"Vault root directory (default ~/Vault)"`
	Verbose bool   `short:"V" help:"Enable debug logging"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	URL    string `arg:"" help:"Article URL"`
	Tags   string `short:"t" help:"Comma-separated tags overriding derived keywords"`
	JSON   bool   `help:"Print the result as JSON"`
	Queue  bool   `short:"q" help:"Queue the URL for later instead of saving now"`
	DryRun bool   `help:"Run every step except the final write"`
}

// ProcessCmd is the "process" subcommand.
type ProcessCmd struct {
	Tags   string `short:"t" help:"Comma-separated tags applied to every saved item"`
	JSON   bool   `help:"Print results as JSON"`
	DryRun bool   `help:"Run every step except writes; the queue is left untouched"`
}

// QueueCmd groups the queue inspection subcommands.
type QueueCmd struct {
	List  QueueListCmd  `cmd:"" default:"withargs" help:"List queued URLs"`
	Clear QueueClearCmd `cmd:"" help:"Remove all queued URLs"`
}

// QueueListCmd is the "queue list" subcommand.
type QueueListCmd struct {
	JSON bool `help:"Print the queue as JSON"`
}

// QueueClearCmd is the "queue clear" subcommand.
type QueueClearCmd struct{}
