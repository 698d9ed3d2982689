package events

import "github.com/nikbrunner/filetree/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Rebuild(entries, rows int) {
	logging.Trace("store.rebuild", map[string]interface{}{"entries": entries, "rows": rows})
}
