// Package manifest reads layout trees described in YAML.
//
// A manifest names a viewport and a root node. Every node carries the
// layout properties of layout.Config in kebab-case, plus optional content
// for controls:
//
//	viewport: {width: 80, height: 24}
//	root:
//	  name: page
//	  kind: container
//	  children:
//	    - {name: header, kind: panel, region: top, height: 3}
//	    - name: body
//	      kind: panel
//	      fill: true
//	      children:
//	        - {name: intro, kind: control, text: "hello"}
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-webobj/internal/layout"
)

// ErrInvalidManifest is matched by every ManifestError.
var ErrInvalidManifest = errors.New("invalid manifest")

// ManifestError reports a problem with one node of a manifest.
type ManifestError struct {
	Path    string // Slash-separated node names from the root
	Field   string
	Message string
	Err     error
}

func (e *ManifestError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Field != "" {
		return fmt.Sprintf("manifest error at '%s' in '%s': %s", e.Path, e.Field, msg)
	}
	return fmt.Sprintf("manifest error at '%s': %s", e.Path, msg)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// Is makes every ManifestError match ErrInvalidManifest.
func (e *ManifestError) Is(target error) bool {
	return target == ErrInvalidManifest
}

// Viewport is the space available to the root.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Document is a decoded manifest.
type Document struct {
	// Name identifies the manifest in reports. Load defaults it to the
	// file name.
	Name string `yaml:"name"`

	Viewport Viewport `yaml:"viewport"`

	// RoundingReserve overrides layout.DefaultRoundingReserve.
	RoundingReserve *int `yaml:"rounding-reserve"`

	Root NodeSpec `yaml:"root"`
}

// Load reads and decodes the manifest at filename.
func Load(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if doc.Name == "" {
		doc.Name = filename
	}
	return doc, nil
}

// Decode decodes a manifest from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ManifestError{Path: "/", Message: "empty manifest"}
		}
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &doc, nil
}

// Options returns engine options honouring the manifest's overrides.
func (d *Document) Options() layout.Options {
	opts := layout.DefaultOptions()
	if d.RoundingReserve != nil {
		opts.RoundingReserve = *d.RoundingReserve
	}
	return opts
}
