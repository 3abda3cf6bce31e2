package asset

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"warp-scene/logger"
	"warp-scene/scene"
)

// State is the load state of the model asset.
type State int

const (
	Unloaded State = iota
	Loaded
)

func (s State) String() string {
	switch s {
	case Loaded:
		return "loaded"
	default:
		return "unloaded"
	}
}

// LoadFunc produces the model scene graph. It runs off the frame thread.
type LoadFunc func() (*scene.Node, error)

// FromFile loads a glTF or GLB model from path.
func FromFile(path string) LoadFunc {
	return func() (*scene.Node, error) {
		return scene.LoadGLTF(path)
	}
}

var errNoModel = errors.New("loader returned no model")

type result struct {
	root *scene.Node
	err  error
	took time.Duration
}

// Lifecycle moves from Unloaded to Loaded at most once. Loading happens in a
// goroutine; the transition itself only happens inside Poll, on the caller's
// thread. A failed load is logged and leaves the lifecycle Unloaded for good.
type Lifecycle struct {
	name string
	load LoadFunc
	log  *slog.Logger

	results chan result
	done    chan struct{}
	started bool
	settled bool

	state State
	model *scene.Node
	err   error
	hooks []func(*scene.Node)
}

func NewLifecycle(name string, load LoadFunc, log *slog.Logger) *Lifecycle {
	if log == nil {
		log = logger.L()
	}
	return &Lifecycle{
		name:    name,
		load:    load,
		log:     log.With(logger.ComponentKey, "Load"),
		results: make(chan result, 1),
		done:    make(chan struct{}),
	}
}

// OnLoad registers fn to run inside Poll when the model arrives. Hooks run in
// registration order.
func (l *Lifecycle) OnLoad(fn func(*scene.Node)) {
	l.hooks = append(l.hooks, fn)
}

// Start launches the load. Calls after the first are ignored.
func (l *Lifecycle) Start() {
	if l.started {
		return
	}
	l.started = true
	l.log.Info("loading model", "source", l.name)

	go func() {
		defer close(l.done)
		start := time.Now()
		root, err := l.safeLoad()
		l.results <- result{root: root, err: err, took: time.Since(start)}
	}()
}

// safeLoad runs the loader, reporting a panic as a load error.
func (l *Lifecycle) safeLoad() (root *scene.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			root, err = nil, fmt.Errorf("load panic: %v", r)
		}
	}()
	return l.load()
}

// Poll applies a finished load without blocking. It reports whether this call
// performed the Unloaded to Loaded transition.
func (l *Lifecycle) Poll() bool {
	if !l.started || l.settled {
		return false
	}

	var res result
	select {
	case res = <-l.results:
	default:
		return false
	}
	l.settled = true

	if res.err == nil && res.root == nil {
		res.err = errNoModel
	}
	if res.err != nil {
		l.err = res.err
		l.log.Error("model load failed", "source", l.name, "err", res.err)
		return false
	}

	l.model = res.root
	l.state = Loaded
	l.log.Info("model loaded", "source", l.name, "meshes", len(res.root.Meshes()), "took", res.took.Round(time.Millisecond))
	for _, fn := range l.hooks {
		fn(res.root)
	}
	return true
}

// Done is closed once the background load has produced its result. The
// result still has to be collected by Poll.
func (l *Lifecycle) Done() <-chan struct{} {
	return l.done
}

func (l *Lifecycle) State() State {
	return l.state
}

// Model returns the loaded scene graph, or nil while Unloaded.
func (l *Lifecycle) Model() *scene.Node {
	return l.model
}

// Err returns the load failure, if any.
func (l *Lifecycle) Err() error {
	return l.err
}
