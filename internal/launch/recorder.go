package launch

import "sync"

// Call is one recorded invocation.
type Call struct {
	Name string
	Args []string
}

// Recorder is a Runner stand-in that records invocations and replays canned
// output. It is used by tests across packages.
type Recorder struct {
	mu     sync.Mutex
	calls  []Call
	Out    []byte
	Err    error
	RunErr error
}

// Runner returns the recording Runner.
func (r *Recorder) Runner() Runner {
	return func(name string, args ...string) Commander {
		r.mu.Lock()
		r.calls = append(r.calls, Call{Name: name, Args: append([]string(nil), args...)})
		r.mu.Unlock()
		return recorded{r: r}
	}
}

// Calls returns a copy of the recorded invocations.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

type recorded struct {
	r *Recorder
}

func (c recorded) Run() error {
	return c.r.RunErr
}

func (c recorded) Output() ([]byte, error) {
	return c.r.Out, c.r.Err
}
