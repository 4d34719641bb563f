package commands_test

import (
	"testing"

	"courierquote/internal/core/application/usecases/commands"
	"courierquote/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestQuoteCommand(t *testing.T) {
	cmd, err := commands.NewRequestQuoteCommand(
		" Thandi ", "thandi@example.com", "", "2 boxes\nJHB to DBN ",
		"{550E8400-E29B-41D4-A716-446655440000}",
	)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Thandi", cmd.Name())
	assert.Equal(t, "thandi@example.com", cmd.Email())
	assert.Empty(t, cmd.Recipient())
	assert.Equal(t, "2 boxes\nJHB to DBN", cmd.Details())
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", cmd.QuoteRef())
}

func TestNewRequestQuoteCommand_Invalid(t *testing.T) {
	_, err := commands.NewRequestQuoteCommand("", " ", "", "", "not-a-ref")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "quote_ref")
}

func TestRequestQuoteCommand_NotConstructedViaConstructor(t *testing.T) {
	var cmd commands.RequestQuoteCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrRequestQuoteCommandIsNotConstructed)
}
