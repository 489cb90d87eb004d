package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/starlit/page"
)

// DefaultContent is the built-in page text
func DefaultContent() page.Content {
	return page.Content{
		Title:    "Starlit",
		Subtitle: "put on headphones, dim the lights",
		Prompt:   "begin",
		Poem: []string{
			"the night leans in and listens",
			"every light up there left long ago",
			"and still it finds you here",
			"a thread of fire, then nothing",
			"as if the sky remembered something",
			"stay a while",
			"the dark is only the space between",
		},
	}
}

// LoadContent reads page text from a yaml file. An empty path returns
// DefaultContent; fields missing from the file keep their default values.
func LoadContent(path string) (page.Content, error) {
	if path == "" {
		return DefaultContent(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return page.Content{}, fmt.Errorf("read content: %w", err)
	}
	c, err := ParseContent(data)
	if err != nil {
		return page.Content{}, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// ParseContent decodes yaml content over the defaults, rejecting unknown keys
func ParseContent(data []byte) (page.Content, error) {
	c := DefaultContent()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return page.Content{}, fmt.Errorf("parse content: %w", err)
	}
	return c, nil
}
