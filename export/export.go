// Package export reads and writes notes as markdown files with a YAML
// front-matter header, the interchange format the desktop shell uses.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"recall-notes/models"
)

type frontMatter struct {
	Title     string    `yaml:"title"`
	CreatedAt time.Time `yaml:"created_at"`
	Tags      []string  `yaml:"tags,omitempty"`
}

// Document is a parsed markdown note file.
type Document struct {
	Title   string
	Content string
	Tags    []string
}

// WriteNote writes the note to path as front matter followed by the raw
// content.
func WriteNote(path string, note *models.NoteWithRelations) error {
	fm := frontMatter{
		Title:     note.Note.Title,
		CreatedAt: note.Note.CreatedAt,
	}
	for _, tag := range note.Tags {
		fm.Tags = append(fm.Tags, tag.Name)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(fm); err != nil {
		return fmt.Errorf("failed to encode front matter: %w", err)
	}
	encoder.Close()

	buf.WriteString("---\n\n")
	buf.WriteString(note.Note.Content)

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write note file: %w", err)
	}
	return nil
}

// ReadNote parses a markdown file. A leading front-matter block supplies
// the title and tags; without one the whole file is content and the file
// stem becomes the title.
func ReadNote(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read note file: %w", err)
	}

	doc := &Document{
		Title:   fileStem(path),
		Content: string(bytes.TrimSpace(data)),
	}

	if !bytes.HasPrefix(data, []byte("---")) {
		return doc, nil
	}

	parts := bytes.SplitN(data, []byte("---"), 3)
	if len(parts) < 3 {
		return doc, nil
	}

	var fm frontMatter
	if err := yaml.Unmarshal(parts[1], &fm); err != nil {
		return nil, fmt.Errorf("failed to parse front matter: %w", err)
	}

	if fm.Title != "" {
		doc.Title = fm.Title
	}
	doc.Tags = fm.Tags
	doc.Content = string(bytes.TrimSpace(parts[2]))

	return doc, nil
}

func fileStem(path string) string {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		return "Untitled"
	}
	return stem
}
