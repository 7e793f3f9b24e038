package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Command
		wantErr bool
	}{
		{input: "1", want: CommandPlay},
		{input: " 2 ", want: CommandReserve},
		{input: "3", want: CommandUseReserved},
		{input: "4", want: CommandSwapFront},
		{input: "5", want: CommandSwapTriple},
		{input: "0", want: CommandQuit},
		{input: "play", want: CommandPlay},
		{input: "Reserve", want: CommandReserve},
		{input: "use", want: CommandUseReserved},
		{input: "swap-front", want: CommandSwapFront},
		{input: "swap-triple", want: CommandSwapTriple},
		{input: "quit", want: CommandQuit},
		{input: "6", wantErr: true},
		{input: "-1", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCommand(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnknownCommand)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCommandNamesRoundTripThroughParse(t *testing.T) {
	t.Parallel()

	for _, cmd := range Commands {
		byName, err := ParseCommand(cmd.Name())
		require.NoError(t, err)
		assert.Equal(t, cmd, byName)

		byKey, err := ParseCommand(cmd.MenuKey())
		require.NoError(t, err)
		assert.Equal(t, cmd, byKey)
	}
}
