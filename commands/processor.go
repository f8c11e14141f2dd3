// Package commands provides the reversible command abstraction and the
// bounded undo/redo processor that value edits are routed through.
package commands

import "errors"

// Processor errors
var (
	// ErrNothingToUndo indicates an empty undo history.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates an empty redo history.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Command is one reversible unit of work.
type Command interface {
	// Label is a short human-readable description of the command.
	Label() string

	// Do applies the command. Submit calls it exactly once.
	Do() error

	// Undo reverts the command.
	Undo() error
}

// DefaultMaxCommands bounds the undo history when no limit is configured.
const DefaultMaxCommands = 20

// Processor keeps a bounded undo/redo history of submitted commands.
// It is not safe for concurrent use; the editor is single-threaded by
// contract.
type Processor struct {
	maxCommands int
	undo        []Command
	redo        []Command
}

// NewProcessor creates a processor keeping at most maxCommands undoable
// commands; maxCommands <= 0 selects DefaultMaxCommands.
func NewProcessor(maxCommands int) *Processor {
	if maxCommands <= 0 {
		maxCommands = DefaultMaxCommands
	}

	return &Processor{maxCommands: maxCommands}
}

// Submit runs cmd synchronously and, on success, records it for undo.
// A new command clears the redo history.
func (p *Processor) Submit(cmd Command) error {
	if err := cmd.Do(); err != nil {
		return err
	}

	p.redo = p.redo[:0]

	p.undo = append(p.undo, cmd)
	if len(p.undo) > p.maxCommands {
		copy(p.undo, p.undo[1:])
		p.undo = p.undo[:len(p.undo)-1]
	}

	return nil
}

// Undo reverts the most recent command and moves it to the redo history.
func (p *Processor) Undo() error {
	if len(p.undo) == 0 {
		return ErrNothingToUndo
	}

	cmd := p.undo[len(p.undo)-1]
	if err := cmd.Undo(); err != nil {
		return err
	}

	p.undo = p.undo[:len(p.undo)-1]
	p.redo = append(p.redo, cmd)

	return nil
}

// Redo re-applies the most recently undone command.
func (p *Processor) Redo() error {
	if len(p.redo) == 0 {
		return ErrNothingToRedo
	}

	cmd := p.redo[len(p.redo)-1]
	if err := cmd.Do(); err != nil {
		return err
	}

	p.redo = p.redo[:len(p.redo)-1]
	p.undo = append(p.undo, cmd)

	return nil
}

// CanUndo reports whether the undo history is non-empty.
func (p *Processor) CanUndo() bool { return len(p.undo) > 0 }

// CanRedo reports whether the redo history is non-empty.
func (p *Processor) CanRedo() bool { return len(p.redo) > 0 }

// LastLabel returns the label of the most recent undoable command.
func (p *Processor) LastLabel() string {
	if len(p.undo) == 0 {
		return ""
	}

	return p.undo[len(p.undo)-1].Label()
}
