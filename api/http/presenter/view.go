package presenter

import (
	"context"
	"sync"

	"github.com/artem13815/roadmap/pkg/roadmap"
)

// Phase is the state a roadmap form is in.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseResult
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseResult:
		return "result"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// View is an immutable snapshot of the form. It can only be built through the
// constructors below, so a roadmap exists only in PhaseResult and a message
// only in PhaseError.
type View struct {
	phase   Phase
	target  string
	roadmap *roadmap.Roadmap
	message string
}

func Idle() View { return View{phase: PhaseIdle} }

func Loading(target string) View { return View{phase: PhaseLoading, target: target} }

func Succeeded(target string, rm roadmap.Roadmap) View {
	return View{phase: PhaseResult, target: target, roadmap: &rm}
}

func Failed(target, message string) View {
	return View{phase: PhaseError, target: target, message: message}
}

func (v View) Phase() Phase { return v.phase }
func (v View) Target() string { return v.target }
func (v View) Loading() bool { return v.phase == PhaseLoading }
func (v View) ErrorText() string { return v.message }

// Roadmap returns the generated roadmap; ok is false outside PhaseResult.
func (v View) Roadmap() (rm roadmap.Roadmap, ok bool) {
	if v.roadmap == nil {
		return roadmap.Roadmap{}, false
	}
	return *v.roadmap, true
}

// Form drives a View through submissions of one form instance.
// It does not serialize submissions; a second Submit while one is in flight
// runs independently and the last one to finish wins.
type Form struct {
	gen      roadmap.UseCase
	mu       sync.Mutex
	view     View
	onChange func(View)
}

// NewForm starts in Idle. onChange, if set, observes every transition.
func NewForm(gen roadmap.UseCase, onChange func(View)) *Form {
	return &Form{gen: gen, view: Idle(), onChange: onChange}
}

func (f *Form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.view
}

// Submit enters Loading, runs the generator and settles in Result or Error.
func (f *Form) Submit(ctx context.Context, target string) View {
	f.set(Loading(target))

	rm, err := f.gen.Generate(ctx, target)
	if err != nil {
		return f.set(Failed(target, roadmap.DisplayMessage(err)))
	}
	return f.set(Succeeded(target, rm))
}

// Reject settles in Error without calling the generator.
func (f *Form) Reject(target, message string) View {
	return f.set(Failed(target, message))
}

func (f *Form) set(v View) View {
	f.mu.Lock()
	f.view = v
	f.mu.Unlock()
	if f.onChange != nil {
		f.onChange(v)
	}
	return v
}
