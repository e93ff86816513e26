package commands

import (
	"context"
	"sync"
)

// History sequences command execution and keeps the undo/redo stacks
// consistent. All methods serialize through one mutex: a redo-stack clear and
// an undo-stack push must be observed together.
type History struct {
	mu        sync.Mutex
	undoStack []Command
	redoStack []Command
}

func NewHistory() *History {
	return &History{}
}

// Execute runs the command and records it for undo. Any successful execution
// clears the redo stack (linear-history discipline). A failed command is not
// recorded and both stacks stay unchanged.
func (h *History) Execute(ctx context.Context, cmd Command) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := cmd.Execute(ctx); err != nil {
		return err
	}
	h.undoStack = append(h.undoStack, cmd)
	h.redoStack = nil
	return nil
}

// Undo reverses the most recent command. The command moves to the redo stack
// even when its undo reports an error, so its forward action can still be
// replayed; the error is surfaced to the caller as "undo did not fully apply".
func (h *History) Undo(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return nil
	}
	last := len(h.undoStack) - 1
	cmd := h.undoStack[last]
	h.undoStack = h.undoStack[:last]

	err := cmd.Undo(ctx)
	h.redoStack = append(h.redoStack, cmd)
	return err
}

// Redo re-executes the most recently undone command. If the re-execution
// fails the command is dropped from both stacks: re-attempting a failed redo
// has no well-defined recovery here, a known sharp edge.
func (h *History) Redo(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return nil
	}
	last := len(h.redoStack) - 1
	cmd := h.redoStack[last]
	h.redoStack = h.redoStack[:last]

	if err := cmd.Execute(ctx); err != nil {
		return err
	}
	h.undoStack = append(h.undoStack, cmd)
	return nil
}
