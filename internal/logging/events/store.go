package events

import "github.com/atomicstack/termdeck/internal/logging"

type StoreTracer struct{}

type RemoteTracer struct{}

type ProcessTracer struct{}

var (
	Store   = StoreTracer{}
	Remote  = RemoteTracer{}
	Process = ProcessTracer{}
)

func (StoreTracer) Read(path string, count int) {
	logging.Trace("store.read", map[string]interface{}{"path": path, "count": count})
}

func (StoreTracer) ReadFailed(path string, err error) {
	logging.Trace("store.read-failed", map[string]interface{}{"path": path, "error": errString(err)})
}

func (StoreTracer) Write(path string, count int) {
	logging.Trace("store.write", map[string]interface{}{"path": path, "count": count})
}

func (StoreTracer) WriteFailed(path string, err error) {
	logging.Trace("store.write-failed", map[string]interface{}{"path": path, "error": errString(err)})
}

func (RemoteTracer) Request(method, url string) {
	logging.Trace("remote.request", map[string]interface{}{"method": method, "url": url})
}

func (RemoteTracer) Response(method, url string, status int) {
	logging.Trace("remote.response", map[string]interface{}{"method": method, "url": url, "status": status})
}

func (RemoteTracer) ReadFailed(resource string, err error) {
	logging.Trace("remote.read-failed", map[string]interface{}{"resource": resource, "error": errString(err)})
}

func (RemoteTracer) WriteFailed(resource, op string, err error) {
	logging.Trace("remote.write-failed", map[string]interface{}{"resource": resource, "op": op, "error": errString(err)})
}

func (ProcessTracer) Launch(name string, args []string) {
	logging.Trace("process.launch", map[string]interface{}{"name": name, "args": args})
}

func (ProcessTracer) LaunchFailed(name string, err error) {
	logging.Trace("process.launch-failed", map[string]interface{}{"name": name, "error": errString(err)})
}

func (ProcessTracer) Clipboard(text string, err error) {
	payload := map[string]interface{}{"text": text}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("process.clipboard", payload)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
