package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Load reads a schema context from path, choosing the decoder by extension:
//   - .json: a Context document, or a Prisma DMMF document (detected by its
//     top-level "datamodel" key)
//   - .yaml, .yml: a Context document
//   - .cue: a CUE file whose top-level value unifies to a Context
func Load(path string) (*Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var ctx *Context
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		ctx, err = ParseJSON(data)
	case ".yaml", ".yml":
		ctx, err = ParseYAML(data)
	case ".cue":
		ctx, err = ParseCUE(filepath.Base(path), data)
	default:
		return nil, fmt.Errorf("unsupported schema file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ctx, nil
}

// ParseJSON decodes a Context, or a DMMF document, from JSON.
func ParseJSON(data []byte) (*Context, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if _, ok := top["datamodel"]; ok {
		return FromDMMF("", data)
	}

	var ctx Context
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ctx); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	return &ctx, nil
}

// ParseYAML decodes a Context from YAML.
// Unknown fields are rejected so typos like "enumValue:" surface early.
func ParseYAML(data []byte) (*Context, error) {
	var ctx Context
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&ctx); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	return &ctx, nil
}

// ParseCUE evaluates CUE source and decodes the result into a Context.
// CUE constraints in the source are checked before decoding.
func ParseCUE(filename string, data []byte) (*Context, error) {
	cctx := cuecontext.New()
	v := cctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile CUE %s: %w", filename, err)
	}
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("invalid CUE %s: %w", filename, err)
	}

	var ctx Context
	if err := v.Decode(&ctx); err != nil {
		return nil, fmt.Errorf("failed to decode CUE %s: %w", filename, err)
	}
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	return &ctx, nil
}

// Validate checks the structural rules every Context must satisfy.
// The root model may be empty; it is usually chosen later with WithModel.
func (c *Context) Validate() error {
	seen := make(map[string]bool, len(c.Models))
	for i, m := range c.Models {
		if m.Name == "" {
			return fmt.Errorf("models[%d]: name is required", i)
		}
		if seen[m.Name] {
			return fmt.Errorf("models[%d]: duplicate model %q", i, m.Name)
		}
		seen[m.Name] = true

		for j, f := range m.Fields {
			if f.Name == "" {
				return fmt.Errorf("models[%d].fields[%d]: name is required", i, j)
			}
			switch f.Kind {
			case KindScalar, KindEnum, KindObject, KindUnsupported:
			default:
				return fmt.Errorf("models[%d].fields[%d]: unknown kind %q", i, j, f.Kind)
			}
			if f.Type == "" {
				return fmt.Errorf("models[%d].fields[%d]: type is required", i, j)
			}
		}
	}
	return nil
}
