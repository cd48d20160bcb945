package vocab_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jdcr/fold"
	"go.jacobcolvin.com/jdcr/highlight"
	"go.jacobcolvin.com/jdcr/markup"
	"go.jacobcolvin.com/jdcr/stringtest"
	"go.jacobcolvin.com/jdcr/vocab"
)

func TestParse(t *testing.T) {
	t.Parallel()

	v, err := vocab.Parse([]byte(stringtest.Input(`
		tags:
		  - name: strong
		    open: <strong>
		    close: </strong>
		    style: bold
		  - name: var
		    open: <var>
		    close: </var>
		placeholders:
		  - match: <br>
		    text: " / "
	`)))
	require.NoError(t, err)

	require.Len(t, v.Rules, 1)
	assert.Equal(t, "strong", v.Rules[0].Tag.Name())
	assert.Equal(t, "<strong>", v.Rules[0].Tag.Open())
	assert.Equal(t, highlight.StyleBold, v.Rules[0].Style)

	assert.Equal(t, []fold.Placeholder{{Match: "<br>", Text: " / "}}, v.Placeholders)
}

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input            string
		wantRules        int
		wantPlaceholders []fold.Placeholder
	}{
		"empty document": {
			input:            "",
			wantRules:        len(highlight.DefaultRules()),
			wantPlaceholders: fold.DefaultPlaceholders(),
		},
		"comments only": {
			input:            "# nothing here\n",
			wantRules:        len(highlight.DefaultRules()),
			wantPlaceholders: fold.DefaultPlaceholders(),
		},
		"no tags": {
			input:            "tags: []\n",
			wantRules:        0,
			wantPlaceholders: fold.DefaultPlaceholders(),
		},
		"no placeholders": {
			input:            "placeholders: []\n",
			wantRules:        len(highlight.DefaultRules()),
			wantPlaceholders: []fold.Placeholder{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			v, err := vocab.Parse([]byte(tc.input))
			require.NoError(t, err)
			assert.Len(t, v.Rules, tc.wantRules)
			assert.Equal(t, tc.wantPlaceholders, v.Placeholders)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err   error
		input string
	}{
		"malformed yaml": {
			input: "tags: [",
			err:   vocab.ErrInvalidYAML,
		},
		"unknown key": {
			input: "colors: {}\n",
			err:   vocab.ErrInvalidVocabulary,
		},
		"tags not a list": {
			input: "tags: bold\n",
			err:   vocab.ErrInvalidVocabulary,
		},
		"unknown style": {
			input: "tags:\n  - {name: x, open: <x>, close: </x>, style: blink}\n",
			err:   vocab.ErrInvalidVocabulary,
		},
		"unknown tag key": {
			input: "tags:\n  - {name: x, open: <x>, close: </x>, colour: red}\n",
			err:   vocab.ErrInvalidVocabulary,
		},
		"blank markers": {
			input: "tags:\n  - {name: x, open: ' ', close: ''}\n",
			err:   vocab.ErrInvalidVocabulary,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := vocab.Parse([]byte(tc.input))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDefaultFileRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(vocab.DefaultFile())
	require.NoError(t, err)

	assert.Contains(t, string(data), "<a href=")
	assert.Contains(t, string(data), "<a name=")

	v, err := vocab.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, vocab.Default(), v)
}

func TestDefaultFileKeepsMarkers(t *testing.T) {
	t.Parallel()

	open := make(map[string]string)
	for _, spec := range vocab.DefaultFile().Tags {
		open[spec.Name] = spec.Open
	}

	assert.Equal(t, "<a href=", open[markup.TagAnchorHref])
	assert.Equal(t, "<a name=", open[markup.TagAnchorName])
	assert.Equal(t, "<b>", open[markup.TagBold])
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tags: []\n"), 0o600))

	v, err := vocab.Load(path)
	require.NoError(t, err)
	assert.Empty(t, v.Rules)

	_, err = vocab.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, vocab.ErrReadVocabulary)
}

func TestConfigLoad(t *testing.T) {
	t.Parallel()

	cfg := vocab.NewConfig()

	v, err := cfg.Load()
	require.NoError(t, err)
	assert.Equal(t, vocab.Default(), v)

	cfg.Path = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.Load()
	require.ErrorIs(t, err, vocab.ErrReadVocabulary)
}

func TestSchema(t *testing.T) {
	t.Parallel()

	schema, err := vocab.Schema()
	require.NoError(t, err)

	out, err := json.Marshal(schema)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))

	assert.Equal(t, "jdcr vocabulary", doc["title"])
	assert.Contains(t, string(out), `"html-link"`)
	assert.Contains(t, doc, "properties")
}
