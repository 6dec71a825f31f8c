// Package schema describes the persistence models a filter targets and
// resolves dotted selectors to their terminal field.
//
// A Context is optional input to translation. When present, comparison
// values are coerced to the declared type of the field a selector reaches;
// when absent, or when the selector's leaf is unknown, values fall back to
// type guessing.
//
// Contexts are loaded from JSON, YAML or CUE files, or imported from a
// Prisma DMMF document:
//
//	ctx, err := schema.Load("schema.yaml")
//	field, err := ctx.ResolveField("author.profile.bio")
package schema
