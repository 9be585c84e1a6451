package accelerator_test

import (
	"errors"
	"testing"

	"floatclock/internal/platform/accelerator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Default(t *testing.T) {
	acc, err := accelerator.Parse("CommandOrControl+Shift+C")
	require.NoError(t, err)
	assert.Equal(t, []accelerator.Modifier{accelerator.CommandOrControl, accelerator.Shift}, acc.Modifiers)
	assert.Equal(t, "C", acc.Key)
	assert.Equal(t, "CommandOrControl+Shift+C", acc.String())
}

func TestParse_CaseAndAliases(t *testing.T) {
	acc, err := accelerator.Parse("ctrl+alt+f9")
	require.NoError(t, err)
	assert.Equal(t, []accelerator.Modifier{accelerator.Control, accelerator.Alt}, acc.Modifiers)
	assert.Equal(t, "F9", acc.Key)

	acc, err = accelerator.Parse("Super + space")
	require.NoError(t, err)
	assert.Equal(t, "Space", acc.Key)

	acc, err = accelerator.Parse("7")
	require.NoError(t, err)
	assert.Empty(t, acc.Modifiers)
	assert.Equal(t, "7", acc.Key)
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"Shift",
		"Shift+",
		"Ctrl+Ctrl+A",
		"Hyper+A",
		"Ctrl+F13",
		"Ctrl+F01",
		"Ctrl+#",
		"A+B",
	} {
		_, err := accelerator.Parse(in)
		assert.Error(t, err, in)
		assert.True(t, errors.Is(err, accelerator.ErrInvalid), in)
	}
}
