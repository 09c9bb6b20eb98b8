package axon

import (
	"fmt"
	"net/url"
	"strings"
)

// AxonPathPartType represents the type of path part
type AxonPathPartType int

const (
	StaticPart AxonPathPartType = iota
	ParameterPart
	WildcardPart
)

// AxonPathPart represents a single part of an Axon path
type AxonPathPart struct {
	Type      AxonPathPartType
	Value     string // For static parts: the literal text, for parameters: the parameter name
	ParamType string // For parameters: the type (e.g., "int", "string"), empty for untyped
}

// AxonPath represents a path in Axon format and provides parsed parts
type AxonPath string

// NewAxonPath creates a new AxonPath from a string
func NewAxonPath(path string) AxonPath {
	return AxonPath(path)
}

// Raw returns the original Axon path format
func (p AxonPath) Raw() string {
	return string(p)
}

// Parts parses the Axon path and returns the individual parts
func (p AxonPath) Parts() []AxonPathPart {
	path := string(p)
	var parts []AxonPathPart

	i := 0
	for i < len(path) {
		if path[i] != '{' {
			start := i
			for i < len(path) && path[i] != '{' {
				i++
			}
			parts = append(parts, AxonPathPart{Type: StaticPart, Value: path[start:i]})
			continue
		}

		j := strings.IndexByte(path[i:], '}')
		if j == -1 {
			// Malformed, keep the rest as a literal
			parts = append(parts, AxonPathPart{Type: StaticPart, Value: path[i:]})
			break
		}
		content := path[i+1 : i+j]
		i += j + 1

		if content == "*" {
			parts = append(parts, AxonPathPart{Type: WildcardPart, Value: "*"})
			continue
		}

		name, typ, _ := strings.Cut(content, ":")
		parts = append(parts, AxonPathPart{
			Type:      ParameterPart,
			Value:     strings.TrimSpace(name),
			ParamType: strings.TrimSpace(typ),
		})
	}

	return parts
}

// Params returns the declared parameter names mapped to their types.
// Untyped parameters map to "string".
func (p AxonPath) Params() map[string]string {
	params := make(map[string]string)
	for _, part := range p.Parts() {
		if part.Type != ParameterPart {
			continue
		}
		typ := part.ParamType
		if typ == "" {
			typ = "string"
		}
		params[part.Value] = typ
	}
	return params
}

// Validate checks the path syntax: leading slash, balanced braces, named parameters
// and known parameter types.
func (p AxonPath) Validate() error {
	raw := string(p)
	if !strings.HasPrefix(raw, "/") {
		return fmt.Errorf("path must start with '/': %q", raw)
	}
	if strings.Count(raw, "{") != strings.Count(raw, "}") {
		return fmt.Errorf("mismatched braces in path: %s", raw)
	}

	seen := make(map[string]bool)
	for _, part := range p.Parts() {
		if part.Type != ParameterPart {
			continue
		}
		if part.Value == "" {
			return fmt.Errorf("empty parameter name in path: %s", raw)
		}
		if seen[part.Value] {
			return fmt.Errorf("duplicate parameter %q in path: %s", part.Value, raw)
		}
		seen[part.Value] = true
		if part.ParamType != "" && !IsBuiltinType(part.ParamType) {
			return fmt.Errorf("unknown parameter type %q in path: %s", part.ParamType, raw)
		}
	}
	return nil
}

// Build renders a concrete URL path, substituting each parameter with values[name].
func (p AxonPath) Build(values map[string]any) (string, error) {
	var b strings.Builder
	for _, part := range p.Parts() {
		switch part.Type {
		case StaticPart:
			b.WriteString(part.Value)
		case ParameterPart:
			v, ok := values[part.Value]
			if !ok {
				return "", fmt.Errorf("missing value for parameter %q in %s", part.Value, p)
			}
			b.WriteString(url.PathEscape(fmt.Sprint(v)))
		case WildcardPart:
			if v, ok := values["*"]; ok {
				b.WriteString(fmt.Sprint(v))
			}
		}
	}
	return b.String(), nil
}
