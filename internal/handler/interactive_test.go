package handler

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passgen/passgen-go/internal/crypto"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		input      string
		want       []crypto.Class
		wantRandom bool
		wantErr    error
	}{
		{input: "1", want: []crypto.Class{crypto.Numbers}},
		{input: "1,3", want: []crypto.Class{crypto.Numbers, crypto.Uppercase}},
		{input: " 4 , 2 ", want: []crypto.Class{crypto.Special, crypto.Lowercase}},
		{input: "2,2,2", want: []crypto.Class{crypto.Lowercase}},
		{input: "5", want: crypto.AllClasses()},
		{input: "1,5,6", want: crypto.AllClasses()},
		{input: "6", wantRandom: true},
		{input: "2,6", wantRandom: true},
		{input: "7", wantErr: errSelectionRange},
		{input: "0,1", wantErr: errSelectionRange},
		{input: "one", wantErr: errSelectionFormat},
		{input: "1,,2", wantErr: errSelectionFormat},
		{input: "  ", wantErr: errSelectionEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sel, err := parseSelection(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRandom, sel.random)
			assert.Equal(t, tt.want, sel.classes)
		})
	}
}

func TestInteractive_SinglePassword(t *testing.T) {
	// numbers, length 8, default count, stop.
	f := newFixture(t, "1\n8\n\nn\n")
	code := f.interactive().Run(false)

	require.Equal(t, 0, code)
	require.Len(t, f.clip.Copied, 1)
	assert.Regexp(t, regexp.MustCompile(`^[0-9]{8}$`), f.clip.Copied[0])

	out := f.out.String()
	assert.Contains(t, out, "Character Types:")
	assert.Contains(t, out, "Character types: Numbers")
	assert.Contains(t, out, "✓ Copied to clipboard!")
	assert.NotContains(t, out, "Secure Password Generator")
}

func TestInteractive_ShowsBannerOnce(t *testing.T) {
	f := newFixture(t, "1\n4\n\ny\n2\n4\n\nno\n")
	code := f.interactive().Run(true)

	require.Equal(t, 0, code)
	out := f.out.String()
	assert.Equal(t, 1, strings.Count(out, "Secure Password Generator"))
	assert.Equal(t, 2, strings.Count(out, "Character Types:"))
	assert.Len(t, f.clip.Copied, 2)
}

func TestInteractive_RepromptsInvalidAnswers(t *testing.T) {
	input := typed("9", "abc", "3") + // selection: out of range, not numbers, uppercase
		typed("0", "300", "5") + // length
		typed("-2", "2") + // count
		typed("7", "2") + // copy index
		"n\n"

	f := newFixture(t, input)
	code := f.interactive().Run(false)

	require.Equal(t, 0, code)
	out := f.out.String()
	assert.Contains(t, out, "✗ Error: Please enter numbers between 1-6")
	assert.Contains(t, out, "✗ Error: Please enter comma-separated numbers")
	assert.Contains(t, out, "✗ Error: Please enter a number between 1-256")
	assert.Contains(t, out, "✗ Error: Please enter a number >= 1")
	assert.Contains(t, out, "✗ Error: Please enter a number between 1-2")
	assert.Contains(t, out, "✓ Password [2] copied to clipboard!")

	require.Len(t, f.clip.Copied, 1)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z]{5}$`), f.clip.Copied[0])
}

func TestInteractive_ConfirmAnswers(t *testing.T) {
	tests := []struct {
		answer     string
		wantRounds int
	}{
		{answer: "", wantRounds: 2},
		{answer: "y", wantRounds: 2},
		{answer: "YES", wantRounds: 2},
		{answer: "n", wantRounds: 1},
		{answer: "no", wantRounds: 1},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			round := "1\n4\n\n"
			f := newFixture(t, round+tt.answer+"\n"+round+"n\n")
			require.Equal(t, 0, f.interactive().Run(false))
			assert.Len(t, f.clip.Copied, tt.wantRounds)
		})
	}
}

func TestInteractive_CtrlCAtPromptAsksAgain(t *testing.T) {
	f := newFixture(t, "\x03"+"1\n8\n\nn\n")
	interrupts := 0
	f.prompt.OnInterrupt(func() { interrupts++ })

	require.Equal(t, 0, f.interactive().Run(false))
	assert.Equal(t, 1, interrupts)
	require.Len(t, f.clip.Copied, 1)
	assert.Len(t, f.clip.Copied[0], 8)
}

func TestInteractive_CtrlCWithoutHandlerStops(t *testing.T) {
	f := newFixture(t, "\x03"+"1\n8\n\nn\n")

	require.Equal(t, 0, f.interactive().Run(false))
	assert.Empty(t, f.clip.Copied)
}

func TestInteractive_RandomTypes(t *testing.T) {
	f := newFixture(t, "6\n12\n1\nn\n")
	code := f.interactive().Run(false)

	require.Equal(t, 0, code)
	assert.Contains(t, f.out.String(), "ℹ Randomly selected: ")
	require.Len(t, f.clip.Copied, 1)
	assert.Len(t, f.clip.Copied[0], 12)
}

func TestInteractive_EndOfInput(t *testing.T) {
	for _, input := range []string{"", "1\n", "1\n8\n"} {
		f := newFixture(t, input)
		assert.Equal(t, 0, f.interactive().Run(false), "input %q", input)
		assert.Empty(t, f.clip.Copied)
	}
}
