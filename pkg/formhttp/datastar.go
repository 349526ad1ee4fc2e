package formhttp

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formkit/pkg/form"
)

const (
	// DataStarAcceptHeader is the Accept header value sent by DataStar requests.
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter DataStar uses for signals.
	DataStarQueryParam = "datastar"

	// NoticeID is the element id the submission notice is patched into.
	NoticeID = "form-notice"
)

// IsDataStar reports whether r came from a DataStar client and expects an
// SSE response.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// formSignals is the client-side state pushed with PatchSignals. Every field
// has an entry in Errors and Touched so cleared errors reach the client.
type formSignals struct {
	Errors  map[string]string `json:"errors"`
	Touched map[string]bool   `json:"touched"`
	Pending map[string]bool   `json:"pending"`
	Valid   bool              `json:"valid"`
}

func signalsOf(snap form.Snapshot) formSignals {
	s := formSignals{
		Errors:  make(map[string]string, len(snap.Fields)),
		Touched: make(map[string]bool, len(snap.Fields)),
		Pending: make(map[string]bool, len(snap.Fields)),
		Valid:   snap.Valid,
	}
	for _, f := range snap.Fields {
		s.Errors[f.Name] = f.Error
		s.Touched[f.Name] = f.Touched
		s.Pending[f.Name] = f.Pending
	}
	return s
}

// patchSnapshot sends the snapshot as signals and re-renders every field's
// error element.
func patchSnapshot(sse *datastar.ServerSentEventGenerator, snap form.Snapshot) error {
	data, err := json.Marshal(signalsOf(snap))
	if err != nil {
		return err
	}
	if err := sse.PatchSignals(data); err != nil {
		return err
	}
	for _, f := range snap.Fields {
		if err := sse.PatchElementTempl(FieldError(f.Name, f.Error),
			datastar.WithSelector("#"+FieldErrorID(f.Name)),
			datastar.WithMode(datastar.ElementPatchModeOuter),
		); err != nil {
			return err
		}
	}
	return nil
}

// patchNotice renders msg into the notice element.
func patchNotice(sse *datastar.ServerSentEventGenerator, msg string) error {
	return sse.PatchElementTempl(Notice(msg),
		datastar.WithSelector("#"+NoticeID),
		datastar.WithMode(datastar.ElementPatchModeOuter),
	)
}
