package events

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	trace("app.start", payload)
}

func (AppTracer) ConnectionReady(context string) {
	trace("app.connected", map[string]interface{}{"context": context})
}

func (AppTracer) Exit(code int) {
	trace("app.exit", map[string]interface{}{"code": code})
}
