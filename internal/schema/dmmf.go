package schema

import (
	"encoding/json"
	"fmt"
)

// dmmfDocument mirrors the parts of Prisma's DMMF the lookup needs.
type dmmfDocument struct {
	Datamodel struct {
		Models []dmmfModel `json:"models"`
		Enums  []dmmfEnum  `json:"enums"`
	} `json:"datamodel"`
}

type dmmfModel struct {
	Name   string      `json:"name"`
	Fields []dmmfField `json:"fields"`
}

type dmmfField struct {
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Kind       Kind       `json:"kind"`
	IsList     bool       `json:"isList"`
	IsRequired bool       `json:"isRequired"`
	EnumValues []dmmfName `json:"enumValues,omitempty"`
}

type dmmfEnum struct {
	Name   string     `json:"name"`
	Values []dmmfName `json:"values"`
}

type dmmfName struct {
	Name string `json:"name"`
}

// FromDMMF builds a Context from a Prisma DMMF JSON document rooted at model.
//
// Enum members come from the field's own enumValues when present, otherwise
// from the datamodel enum named by the field's type. Extra DMMF attributes
// (dbName, relationName, defaults...) are ignored.
func FromDMMF(model string, data []byte) (*Context, error) {
	var doc dmmfDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse DMMF: %w", err)
	}

	enums := make(map[string][]string, len(doc.Datamodel.Enums))
	for _, e := range doc.Datamodel.Enums {
		enums[e.Name] = names(e.Values)
	}

	ctx := &Context{
		Model:  model,
		Models: make([]Model, 0, len(doc.Datamodel.Models)),
	}
	for _, dm := range doc.Datamodel.Models {
		m := Model{Name: dm.Name, Fields: make([]Field, 0, len(dm.Fields))}
		for _, df := range dm.Fields {
			f := Field{
				Name:       df.Name,
				Type:       df.Type,
				Kind:       df.Kind,
				IsList:     df.IsList,
				IsRequired: df.IsRequired,
			}
			if f.Kind == KindEnum {
				if len(df.EnumValues) > 0 {
					f.EnumValues = names(df.EnumValues)
				} else {
					f.EnumValues = enums[df.Type]
				}
			}
			m.Fields = append(m.Fields, f)
		}
		ctx.Models = append(ctx.Models, m)
	}

	if err := ctx.Validate(); err != nil {
		return nil, fmt.Errorf("invalid DMMF: %w", err)
	}
	return ctx, nil
}

func names(list []dmmfName) []string {
	out := make([]string, len(list))
	for i, n := range list {
		out[i] = n.Name
	}
	return out
}
