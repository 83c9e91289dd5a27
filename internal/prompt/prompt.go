// Package prompt defines the capability interfaces through which the core
// delegates interactive decisions. The core itself never touches a terminal;
// the CLI injects implementations of these interfaces.
package prompt

import "context"

// Confirmation describes a pending overwrite decision: both document versions
// are presented so the decider can compare them.
type Confirmation struct {
	Title    string
	Current  string
	Proposed string
}

// Confirmer resolves overwrite conflicts with an explicit yes/no decision.
type Confirmer interface {
	Confirm(ctx context.Context, c Confirmation) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, c Confirmation) (bool, error)

func (f ConfirmerFunc) Confirm(ctx context.Context, c Confirmation) (bool, error) {
	return f(ctx, c)
}

// AlwaysConfirm accepts every confirmation. Used for non-interactive runs.
var AlwaysConfirm = ConfirmerFunc(func(context.Context, Confirmation) (bool, error) {
	return true, nil
})

// Prompter asks for a single field value, returning fallback when the user
// enters nothing.
type Prompter interface {
	Ask(ctx context.Context, field, fallback string) (string, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(ctx context.Context, field, fallback string) (string, error)

func (f PrompterFunc) Ask(ctx context.Context, field, fallback string) (string, error) {
	return f(ctx, field, fallback)
}
