package formhttp

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// events streams the form's snapshots over SSE until the client goes away
// or the form is deleted. The current state is sent first.
func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	id, f, err := h.lookup(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	done, err := h.registry.Done(id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	// one slot holding the newest snapshot; older ones are superseded
	updates := make(chan form.Snapshot, 1)
	unsubscribe := f.Subscribe(func(s form.Snapshot) {
		for {
			select {
			case updates <- s:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	defer unsubscribe()

	sse := datastar.NewSSE(w, r)
	log := h.log.With(logger.Form(f.Name()))
	log.DebugContext(r.Context(), "event stream opened")
	defer log.DebugContext(r.Context(), "event stream closed")

	if err := patchSnapshot(sse, f.Snapshot()); err != nil {
		log.DebugContext(r.Context(), "cannot patch snapshot", logger.Error(err))
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case <-done:
			return
		case snap := <-updates:
			if err := patchSnapshot(sse, snap); err != nil {
				log.DebugContext(r.Context(), "cannot patch snapshot", logger.Error(err))
				return
			}
		}
	}
}
