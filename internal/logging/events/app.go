package events

import "github.com/atomicstack/termdeck/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}

func (AppTracer) OpenQuery(query, title string) {
	logging.Trace("app.open-query", map[string]interface{}{"query": query, "title": title})
}
