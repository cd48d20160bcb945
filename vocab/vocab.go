package vocab

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/jdcr/fold"
	"go.jacobcolvin.com/jdcr/highlight"
	"go.jacobcolvin.com/jdcr/markup"
)

// Sentinel errors returned when loading a vocabulary.
var (
	ErrReadVocabulary    = errors.New("read vocabulary")
	ErrInvalidYAML       = errors.New("invalid yaml")
	ErrInvalidVocabulary = errors.New("invalid vocabulary")
	ErrSchema            = errors.New("build schema")
)

// File is the YAML form of a vocabulary. A missing list selects the
// built-in default for that list; an empty list disables it.
type File struct {
	Tags         []TagSpec         `json:"tags,omitempty"         yaml:"tags,omitempty"         jsonschema:"markup tags to recognize, in priority order"`
	Placeholders []PlaceholderSpec `json:"placeholders,omitempty" yaml:"placeholders,omitempty" jsonschema:"fold placeholders for HTML tags, first match wins"`
}

// TagSpec describes one markup tag.
type TagSpec struct {
	Name  string `json:"name"            yaml:"name"            jsonschema:"identifier reported with each highlight"`
	Open  string `json:"open"            yaml:"open"            jsonschema:"open marker, matched by substring with whitespace removed"`
	Close string `json:"close"           yaml:"close"           jsonschema:"close marker, matched by substring with whitespace removed"`
	Style string `json:"style,omitempty" yaml:"style,omitempty" jsonschema:"highlight style of the tag's values; omit to leave its values unstyled"`
}

// PlaceholderSpec describes one fold placeholder.
type PlaceholderSpec struct {
	Match string `json:"match" yaml:"match" jsonschema:"text an HTML tag must contain, compared case-insensitively"`
	Text  string `json:"text"  yaml:"text"  jsonschema:"text shown in place of the folded tag"`
}

// Vocabulary is the resolved form of a [File].
type Vocabulary struct {
	Rules        []highlight.Rule
	Placeholders []fold.Placeholder
}

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	return &Vocabulary{
		Rules:        highlight.DefaultRules(),
		Placeholders: fold.DefaultPlaceholders(),
	}
}

// DefaultFile returns the built-in vocabulary in its YAML form.
func DefaultFile() File {
	styles := make(map[string]highlight.Style)
	for _, r := range highlight.DefaultRules() {
		styles[r.Tag.Name()] = r.Style
	}

	var f File

	for _, t := range markup.DefaultVocabulary() {
		f.Tags = append(f.Tags, TagSpec{
			Name:  t.Name(),
			Open:  t.RawOpen(),
			Close: t.RawClose(),
			Style: string(styles[t.Name()]),
		})
	}

	for _, p := range fold.DefaultPlaceholders() {
		f.Placeholders = append(f.Placeholders, PlaceholderSpec(p))
	}

	return f
}

// Schema returns the JSON Schema of [File].
func Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[File](nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	schema.Title = "jdcr vocabulary"
	closeObject(schema)

	for _, name := range []string{"tags", "placeholders"} {
		if list := schema.Properties[name]; list != nil && list.Items != nil {
			closeObject(list.Items)
		}
	}

	if tags := schema.Properties["tags"]; tags != nil && tags.Items != nil {
		if style := tags.Items.Properties["style"]; style != nil {
			for _, s := range highlight.AllStyles() {
				style.Enum = append(style.Enum, string(s))
			}
		}
	}

	return schema, nil
}

// closeObject rejects properties s does not declare.
func closeObject(s *jsonschema.Schema) {
	s.AdditionalProperties = &jsonschema.Schema{Not: &jsonschema.Schema{}}
}

// Load reads and parses the vocabulary file at path.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadVocabulary, err)
	}

	return Parse(data)
}

// Parse validates YAML data against [Schema] and resolves it.
func Parse(data []byte) (*Vocabulary, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Default(), nil
	}

	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("null")
	}

	var instance any

	err = json.Unmarshal(raw, &instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}

	// A document of only comments.
	if instance == nil {
		instance = map[string]any{}
		raw = []byte("{}")
	}

	schema, err := Schema()
	if err != nil {
		return nil, err
	}

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	err = resolved.Validate(instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidVocabulary, err)
	}

	var f File

	err = json.Unmarshal(raw, &f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidVocabulary, err)
	}

	return f.Vocabulary()
}

// Vocabulary resolves f, filling missing lists from [Default].
func (f File) Vocabulary() (*Vocabulary, error) {
	v := Default()

	if f.Tags != nil {
		v.Rules = make([]highlight.Rule, 0, len(f.Tags))

		for _, spec := range f.Tags {
			tag := markup.NewTag(spec.Name, spec.Open, spec.Close)
			if tag.IsZero() {
				return nil, fmt.Errorf("%w: tag %q has no markers", ErrInvalidVocabulary, spec.Name)
			}

			if spec.Style == "" {
				continue
			}

			style, err := highlight.ParseStyle(spec.Style)
			if err != nil {
				return nil, fmt.Errorf("%w: tag %q: %w", ErrInvalidVocabulary, spec.Name, err)
			}

			v.Rules = append(v.Rules, highlight.Rule{Tag: tag, Style: style})
		}
	}

	if f.Placeholders != nil {
		v.Placeholders = make([]fold.Placeholder, 0, len(f.Placeholders))
		for _, spec := range f.Placeholders {
			v.Placeholders = append(v.Placeholders, fold.Placeholder(spec))
		}
	}

	return v, nil
}
