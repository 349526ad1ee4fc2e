// Package formhttp exposes live forms over HTTP.
//
// A Registry creates forms from a schema.Catalog and keys them by UUID.
// Handler mounts a chi router with these routes:
//
//	GET    /                  list definition names
//	POST   /{definition}      create a form, returns {"id", "form", "fields"}
//	GET    /{id}              current snapshot
//	POST   /{id}/change       {"field", "value"}: value changed, debounced
//	POST   /{id}/blur         {"field", "value"}: field lost focus, validated now
//	POST   /{id}/submit       validate everything and submit
//	DELETE /{id}              close the form
//	GET    /{id}/events       SSE stream of snapshots
//
// Change and blur accept a JSON body, DataStar signals or a multipart body
// whose "field" part names the field and whose file parts carry the files.
// Only file metadata is read.
//
// Requests detected by IsDataStar are answered over SSE: the snapshot goes
// out as signals (errors, touched, pending and valid) and every field's
// error element is patched as "#<field>-error". A blocked submission patches
// the notice into "#form-notice"; plain JSON clients get 422 with
// {"message", "errors"}.
//
// Usage:
//
//	catalog, err := schema.LoadCatalogFile(cfg.DefinitionsFile)
//	if err != nil {
//		return err
//	}
//	registry := formhttp.NewRegistry(catalog, formhttp.WithRegistryLogger(log))
//	defer registry.Close()
//
//	r := chi.NewRouter()
//	r.Mount("/forms", formhttp.NewHandler(registry,
//		formhttp.WithConfig(cfg),
//		formhttp.WithLogger(log),
//	).Handle())
package formhttp
