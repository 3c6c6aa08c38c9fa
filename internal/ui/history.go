package ui

import "github.com/piwi3910/FurniProfit/internal/model"

const defaultMaxDepth = 50

// Snapshot captures the form input at a point in time.
type Snapshot struct {
	Input model.Input
	Label string // Human-readable description (e.g. "Edit Transport")
}

// History manages undo/redo stacks of form snapshots. It lives only as long
// as the window; nothing is written to disk.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return &History{
		maxDepth: defaultMaxDepth,
	}
}

// Push saves a snapshot onto the undo stack and clears the redo stack.
// It is called with the state from before the change.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo pops the most recent snapshot and moves current onto the redo stack.
// It returns false when there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo is the inverse of Undo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return last, true
}

// CanUndo returns true if there is at least one snapshot to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if there is at least one snapshot to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// MakeSnapshot creates a snapshot of in with a label. Input holds only value
// fields, so the copy is independent of later edits.
func MakeSnapshot(in model.Input, label string) Snapshot {
	return Snapshot{Input: in, Label: label}
}

// describeChange names the first field that differs between two inputs.
func describeChange(prev, next model.Input) string {
	switch {
	case prev.Quantity != next.Quantity:
		return "Edit Units Produced"
	case prev.TotalDays != next.TotalDays:
		return "Edit Working Days"
	case !prev.MaterialCostA.Equal(next.MaterialCostA):
		return "Edit Board / Melamine"
	case !prev.MaterialCostB.Equal(next.MaterialCostB):
		return "Edit Hardware"
	case !prev.DailyWage.Equal(next.DailyWage):
		return "Edit Daily Wage"
	case !prev.Transport.Equal(next.Transport):
		return "Edit Transport"
	case !prev.Installation.Equal(next.Installation):
		return "Edit Installation"
	case !prev.OtherCosts.Equal(next.OtherCosts):
		return "Edit Other Costs"
	case prev.PricingMode != next.PricingMode:
		return "Change Pricing Mode"
	case !prev.PricingParam.Equal(next.PricingParam):
		return "Edit Pricing Parameter"
	}
	return "Edit"
}
