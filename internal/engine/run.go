package engine

import (
	"context"
	"fmt"

	flowerrors "gitflow.dev/gitflow/internal/errors"
)

// Run executes a parsed command
func (e *Engine) Run(ctx context.Context, cmd Command) (Result, error) {
	switch cmd.Op {
	case OpInit:
		return Result{}, e.Init(ctx, cmd.Init)
	case OpStart:
		if cmd.Kind == nil {
			return Result{}, flowerrors.ErrNoActiveKind
		}
		branch, err := e.Start(ctx, *cmd.Kind, cmd.Name, cmd.Start)
		return Result{Branch: branch}, err
	case OpFinish:
		if cmd.Kind == nil {
			return Result{}, flowerrors.ErrNoActiveKind
		}
		finish, err := e.Finish(ctx, *cmd.Kind, cmd.Name, cmd.Finish)
		return Result{Finish: finish}, err
	default:
		return Result{}, fmt.Errorf("%w: unknown command %s", flowerrors.ErrState, cmd.Op)
	}
}
