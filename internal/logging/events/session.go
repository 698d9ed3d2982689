package events

import "github.com/nikbrunner/filetree/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Mode(from, to string) {
	logging.Trace("session.mode", map[string]interface{}{"from": from, "to": to})
}

func (SessionTracer) Insert(path string) {
	logging.Trace("session.insert", map[string]interface{}{"path": path})
}

func (SessionTracer) EditBegin(path string, exact int, children []string) {
	logging.Trace("session.edit.begin", map[string]interface{}{
		"path":     path,
		"exact":    exact,
		"children": children,
	})
}

func (SessionTracer) EditCommit(from, to string, children int) {
	logging.Trace("session.edit.commit", map[string]interface{}{"from": from, "to": to, "children": children})
}

func (SessionTracer) EditCancel(path string, children int) {
	logging.Trace("session.edit.cancel", map[string]interface{}{"path": path, "children": children})
}

func (SessionTracer) Delete(path string, hierarchy bool, removed int) {
	logging.Trace("session.delete", map[string]interface{}{
		"path":      path,
		"hierarchy": hierarchy,
		"removed":   removed,
	})
}

func (SessionTracer) DeleteCancel(path string) {
	logging.Trace("session.delete.cancel", map[string]interface{}{"path": path})
}

func (SessionTracer) Copy(lines int, err error) {
	payload := map[string]interface{}{"lines": lines}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("session.copy", payload)
}
