// Package schema turns declarative field schemas into validators.
//
// A Schema is either a bare kind tag ("email") or a structured mapping with
// a kind, an optional message override, an optional flag and kind-specific
// parameters:
//
//	fields:
//	  - name: email
//	    schema: email
//	  - name: message
//	    schema:
//	      kind: minLength
//	      min: 10
//	      message: Tell us a bit more
//	  - name: resume
//	    schema:
//	      kind: file
//	      allowedTypes: [".pdf", "application/msword"]
//	      maxSize: 5242880
//
// Resolve dispatches over the closed set of kinds. Unknown kinds and
// structured schemas missing a required parameter fail with a *ConfigError
// instead of silently producing no validator. Whether a file schema checks a
// single file or a list is decided by FieldOptions.Multiple, which comes from
// the field configuration rather than the schema.
//
// Resolver caches resolved validators per field name for one form.
//
// Definition and Catalog describe complete forms. They are decoded from YAML,
// structurally validated with go-playground/validator and resolved eagerly by
// LoadDefinition and LoadCatalog.
package schema
