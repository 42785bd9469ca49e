package events

import "github.com/ktreeapp/ktree/internal/logging"

type UITracer struct{}

type LoadTracer struct{}

type FilterTracer struct{}

type DetailTracer struct{}

var (
	UI     = UITracer{}
	Load   = LoadTracer{}
	Filter = FilterTracer{}
	Detail = DetailTracer{}
)

func trace(event string, payload map[string]interface{}) {
	logging.Trace(event, payload)
}

func (UITracer) Focus(column string, index int) {
	trace("ui.focus", map[string]interface{}{"column": column, "index": index})
}

func (UITracer) Highlight(column string, cursor int) {
	trace("ui.highlight", map[string]interface{}{"column": column, "cursor": cursor})
}

func (UITracer) Select(column, label string) {
	trace("ui.select", map[string]interface{}{"column": column, "label": label})
}

func (UITracer) Key(key string) {
	trace("ui.key", map[string]interface{}{"key": key})
}

func (LoadTracer) Issued(column string, generation int) {
	trace("load.issued", map[string]interface{}{"column": column, "generation": generation})
}

func (LoadTracer) Applied(column string, generation, count int) {
	trace("load.applied", map[string]interface{}{"column": column, "generation": generation, "count": count})
}

// Stale records a discarded fetch result. It is trace-only: a stale result is
// expected behaviour, not an error.
func (LoadTracer) Stale(column string, got, want int) {
	trace("load.stale", map[string]interface{}{"column": column, "generation": got, "current": want})
}

func (LoadTracer) Failed(column string, generation int, err error) {
	payload := map[string]interface{}{"column": column, "generation": generation}
	if err != nil {
		payload["error"] = err.Error()
	}
	trace("load.failed", payload)
}

func (FilterTracer) Committed(column, term string, matches int) {
	trace("filter.commit", map[string]interface{}{"column": column, "term": term, "matches": matches})
}

func (FilterTracer) Cancelled(column string) {
	trace("filter.cancel", map[string]interface{}{"column": column})
}

func (DetailTracer) Mode(mode string) {
	trace("detail.mode", map[string]interface{}{"mode": mode})
}

func (DetailTracer) Loaded(mode string, size int) {
	trace("detail.loaded", map[string]interface{}{"mode": mode, "size": size})
}

func (DetailTracer) CopySlot(slot int, ok bool) {
	trace("detail.copy", map[string]interface{}{"slot": slot, "ok": ok})
}
