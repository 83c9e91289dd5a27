package prompt_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brocklab/seqdat/internal/prompt"
)

func confirmation() prompt.Confirmation {
	return prompt.Confirmation{
		Title:    "overwrite metadata?",
		Current:  "owner: old",
		Proposed: "owner: new",
	}
}

func TestTerminal_ConfirmYes(t *testing.T) {
	var out bytes.Buffer
	term := prompt.NewTerminal(strings.NewReader("y\n"), &out)

	ok, err := term.Confirm(context.Background(), confirmation())
	require.NoError(t, err)
	require.True(t, ok)

	// Both versions were presented before the decision.
	require.Contains(t, out.String(), "owner: old")
	require.Contains(t, out.String(), "owner: new")
}

func TestTerminal_ConfirmDefaultsToNo(t *testing.T) {
	tests := []string{"\n", "n\n", "nope\n", ""}
	for _, input := range tests {
		term := prompt.NewTerminal(strings.NewReader(input), &bytes.Buffer{})
		ok, err := term.Confirm(context.Background(), confirmation())
		require.NoError(t, err)
		require.False(t, ok, "input %q", input)
	}
}

func TestTerminal_AskKeepsFallback(t *testing.T) {
	term := prompt.NewTerminal(strings.NewReader("\n"), &bytes.Buffer{})

	got, err := term.Ask(context.Background(), "Owner", "daylin")
	require.NoError(t, err)
	require.Equal(t, "daylin", got)
}

func TestTerminal_AskReadsValue(t *testing.T) {
	term := prompt.NewTerminal(strings.NewReader("  someone \n"), &bytes.Buffer{})

	got, err := term.Ask(context.Background(), "Owner", "daylin")
	require.NoError(t, err)
	require.Equal(t, "someone", got)
}

func TestConfirmerFunc(t *testing.T) {
	called := false
	c := prompt.ConfirmerFunc(func(ctx context.Context, conf prompt.Confirmation) (bool, error) {
		called = true
		return true, nil
	})

	ok, err := c.Confirm(context.Background(), confirmation())
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, called)
}
