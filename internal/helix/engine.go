package helix

// Options are the static parameters of an engine.
type Options struct {
	Easing float64
	Active Preset
	Idle   Preset
	Layers []LayerSpec
}

func DefaultOptions() Options {
	return Options{
		Easing: 0.07,
		Active: ActivePreset,
		Idle:   IdlePreset,
		Layers: DefaultLayers(),
	}
}

func (o Options) preset(v Visibility) Preset {
	if v == Idle {
		return o.Idle
	}
	return o.Active
}

// State is everything one visualization instance mutates.
type State struct {
	Surface    Surface
	Pointer    PointerState
	Motion     MotionState
	Visibility Visibility
}

func NewState(o Options) State {
	return State{Motion: NewMotion(o.Active)}
}

// Frame snapshots the state for a compositor pass.
func (s State) Frame() Frame {
	return Frame{
		Surface:  s.Surface,
		Phase:    s.Motion.PhaseOffset,
		DriftX:   s.Motion.DriftX,
		DriftY:   s.Motion.DriftY,
		PointerX: s.Pointer.CurrentX,
		PointerY: s.Pointer.CurrentY,
	}
}

// Input carries the events that arrived since the previous tick.
type Input struct {
	Resized                     bool
	DisplayWidth, DisplayHeight int
	Scale                       float64

	PointerMoved       bool
	PointerX, PointerY float64 // surface pixels

	Visibility Visibility
}

// Handle applies pending events without advancing time.
func Handle(o Options, s State, in Input) State {
	if in.Resized {
		s.Surface = Measure(in.DisplayWidth, in.DisplayHeight, in.Scale)
	}
	if in.PointerMoved {
		s.Pointer.SetTarget(in.PointerX, in.PointerY, s.Surface.Width, s.Surface.Height)
	}
	if in.Visibility != s.Visibility {
		s.Visibility = in.Visibility
		s.Motion.Apply(o.preset(in.Visibility))
	}
	return s
}

// Step applies pending events and then advances one tick: pointer easing
// first, motion second. An empty surface holds the motion still.
func Step(o Options, s State, in Input) State {
	s = Handle(o, s, in)
	s.Pointer.Ease(o.Easing)
	if !s.Surface.Empty() {
		s.Motion.Advance(s.Surface)
	}
	return s
}

// Engine drives Step and owns the compositor for one mounted instance.
type Engine struct {
	opts       Options
	state      State
	compositor *Compositor
}

func NewEngine(o Options) *Engine {
	if len(o.Layers) == 0 {
		o.Layers = DefaultLayers()
	}
	return &Engine{
		opts:       o,
		state:      NewState(o),
		compositor: NewCompositor(o.Layers),
	}
}

func (e *Engine) Update(in Input) {
	e.state = Step(e.opts, e.state, in)
}

// Handle applies events between ticks.
func (e *Engine) Handle(in Input) {
	e.state = Handle(e.opts, e.state, in)
}

func (e *Engine) State() State { return e.state }

// Draw runs one compositor pass over the current state.
func (e *Engine) Draw(dst Canvas) {
	e.compositor.Compose(e.state.Frame(), dst)
}
