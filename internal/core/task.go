package core

import "context"

// TaskKind identifies what an asynchronous task does.
type TaskKind string

const (
	TaskSubmitScore TaskKind = "submit_score"
	TaskFlavorText  TaskKind = "flavor_text"
)

// Task is a best-effort side effect launched without blocking the frame loop.
// Epoch is the game session that scheduled it.
type Task struct {
	Kind  TaskKind
	Epoch uint64
	Run   func(ctx context.Context) (string, error)
}

// TaskResult carries a finished task back to the game.
type TaskResult struct {
	Kind  TaskKind
	Epoch uint64
	Text  string
	Err   error
}

// Execute runs the task and packages its outcome.
func (t Task) Execute(ctx context.Context) TaskResult {
	res := TaskResult{Kind: t.Kind, Epoch: t.Epoch}
	if t.Run == nil {
		return res
	}
	res.Text, res.Err = t.Run(ctx)
	return res
}
