package events

import "github.com/atomicstack/termdeck/internal/logging"

type RouterTracer struct{}

type ControllerTracer struct{}

type FormTracer struct{}

var (
	Router     = RouterTracer{}
	Controller = ControllerTracer{}
	Form       = FormTracer{}
)

func (RouterTracer) Window(mode string) {
	logging.Trace("router.window", map[string]interface{}{"window": mode})
}

func (RouterTracer) Tab(tab string) {
	logging.Trace("router.tab", map[string]interface{}{"tab": tab})
}

func (RouterTracer) Active(controller string) {
	logging.Trace("router.active", map[string]interface{}{"controller": controller})
}

func (RouterTracer) Quit(reason string) {
	logging.Trace("router.quit", map[string]interface{}{"reason": reason})
}

func (ControllerTracer) Mode(controller, from, to string) {
	logging.Trace("controller.mode", map[string]interface{}{"controller": controller, "from": from, "to": to})
}

func (ControllerTracer) Cursor(controller string, index int) {
	logging.Trace("controller.cursor", map[string]interface{}{"controller": controller, "index": index})
}

func (ControllerTracer) Loaded(controller string, count int) {
	logging.Trace("controller.loaded", map[string]interface{}{"controller": controller, "count": count})
}

func (ControllerTracer) Action(controller, action string, index int) {
	logging.Trace("controller.action", map[string]interface{}{"controller": controller, "action": action, "index": index})
}

func (FormTracer) Focus(form string, field int) {
	logging.Trace("form.focus", map[string]interface{}{"form": form, "field": field})
}

func (FormTracer) Submit(form, mode string, values []string) {
	logging.Trace("form.submit", map[string]interface{}{"form": form, "mode": mode, "values": values})
}
