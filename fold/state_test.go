package fold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/jdcr/fold"
	"go.jacobcolvin.com/jdcr/javadoc"
	"go.jacobcolvin.com/jdcr/textrange"
)

func TestState(t *testing.T) {
	t.Parallel()

	src := "/** <b>x</b> */\n/** <i>y</i> */"
	state := fold.NewState(fold.NewBuilder().BuildAll(javadoc.Parse(src)))

	assert.Equal(t, []string{"comment@0", "comment@16"}, state.Groups())
	assert.Equal(t, "/** x */\n/** y */", state.Apply(src))

	assert.True(t, state.IsFolded(4))
	assert.False(t, state.IsFolded(7))

	state.Toggle("comment@0")
	assert.False(t, state.IsCollapsed("comment@0"))
	assert.False(t, state.IsFolded(4))
	assert.True(t, state.IsFolded(20))
	assert.Equal(t, "/** <b>x</b> */\n/** y */", state.Apply(src))

	state.ToggleAll()
	assert.Equal(t, src, state.Apply(src))

	state.ToggleAll()
	assert.Equal(t, "/** x */\n/** y */", state.Apply(src))
}

func TestStateGroupAt(t *testing.T) {
	t.Parallel()

	src := "/** <b>x</b> */\n/** <i>y</i> */"
	state := fold.NewState(fold.NewBuilder().BuildAll(javadoc.Parse(src)))

	tcs := map[string]struct {
		line   textrange.Range
		want   string
		wantOK bool
	}{
		"first line":        {line: textrange.New(0, 15), want: "comment@0", wantOK: true},
		"second line":       {line: textrange.New(16, 31), want: "comment@16", wantOK: true},
		"between the folds": {line: textrange.New(12, 16), want: "", wantOK: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := state.GroupAt(tc.line)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStateApplySkipsOverlap(t *testing.T) {
	t.Parallel()

	state := fold.NewState([]fold.Region{
		{Range: textrange.New(0, 4), Placeholder: "A", Group: "g"},
		{Range: textrange.New(2, 6), Placeholder: "B", Group: "g"},
		{Range: textrange.New(8, 20), Placeholder: "C", Group: "g"},
	})

	assert.Equal(t, "Aefgh", state.Apply("abcdefgh"))
}
