package layout

import (
	"errors"
	"fmt"
)

// Configuration errors. They indicate an authoring mistake upstream and are
// never recovered by the engine.
var (
	ErrConfiguration     = errors.New("layout configuration error")
	ErrDuplicateRegion   = errors.New("region already occupied")
	ErrMixedChildren     = errors.New("panel and non-panel children on one host")
	ErrUnknownRegion     = errors.New("unknown region")
	ErrMalformedTemplate = errors.New("malformed size template")
	ErrColumnCount       = errors.New("column count must be positive")
	ErrUnknownNode       = errors.New("unknown node")
	ErrInvalidTree       = errors.New("invalid tree operation")
)

// ConfigError reports a configuration error on a specific node.
type ConfigError struct {
	Node    string // Path of the offending node
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Field != "" {
		return fmt.Sprintf("layout: %s: %s: %s", e.Node, e.Field, msg)
	}
	return fmt.Sprintf("layout: %s: %s", e.Node, msg)
}

func (e *ConfigError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrConfiguration
}

// Is makes every ConfigError match ErrConfiguration.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// DuplicateRegionError is returned when a panel is docked into a region that
// already holds a different panel of the same host.
type DuplicateRegionError struct {
	Host     string
	Region   Region
	Occupant NodeID
	Panel    NodeID
}

func (e *DuplicateRegionError) Error() string {
	return fmt.Sprintf("layout: %s: region %s already holds %s, cannot dock %s",
		e.Host, e.Region, e.Occupant, e.Panel)
}

func (e *DuplicateRegionError) Unwrap() error {
	return ErrDuplicateRegion
}

// Is makes every DuplicateRegionError match ErrConfiguration.
func (e *DuplicateRegionError) Is(target error) bool {
	return target == ErrConfiguration
}

// TemplateError reports a malformed row or column template token.
type TemplateError struct {
	Template string
	Token    string
	Reason   string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("malformed template token %q in %q: %s", e.Token, e.Template, e.Reason)
}

func (e *TemplateError) Unwrap() error {
	return ErrMalformedTemplate
}
