// Package command carries user intents from tray callbacks to the single
// goroutine that changes display settings.
package command

import (
	"log/slog"

	"github.com/codeGROOVE-dev/resswitch/pkg/display"
)

// Kind distinguishes commands.
type Kind int

const (
	KindQuit Kind = iota
	KindSwitch
)

// Command is either Quit or SwitchTo(Mode).
type Command struct {
	Mode display.Mode
	Kind Kind
}

// Quit returns the command that ends the control loop.
func Quit() Command {
	return Command{Kind: KindQuit}
}

// SwitchTo returns a command that applies m.
func SwitchTo(m display.Mode) Command {
	return Command{Kind: KindSwitch, Mode: m}
}

func (c Command) String() string {
	if c.Kind == KindQuit {
		return "quit"
	}
	return "switch " + c.Mode.String()
}

// Channel is a capacity-1 queue with many senders and one receiver.
// Sends never block so tray callbacks cannot stall the UI thread.
type Channel struct {
	ch chan Command
}

// NewChannel creates an empty channel.
func NewChannel() *Channel {
	return &Channel{ch: make(chan Command, 1)}
}

// Send queues cmd. A switch that arrives while another command is pending
// is dropped and Send returns false. Quit always gets through: it replaces
// whatever is pending.
func (c *Channel) Send(cmd Command) bool {
	if cmd.Kind != KindQuit {
		select {
		case c.ch <- cmd:
			return true
		default:
			slog.Debug("[LOOP] Command dropped, previous command still pending", "command", cmd.String())
			return false
		}
	}

	for {
		select {
		case c.ch <- cmd:
			return true
		default:
		}
		select {
		case old := <-c.ch:
			slog.Debug("[LOOP] Pending command superseded by quit", "command", old.String())
		default:
		}
	}
}

// Recv returns the receive side for the control loop.
func (c *Channel) Recv() <-chan Command {
	return c.ch
}
