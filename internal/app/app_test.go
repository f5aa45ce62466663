package app

import (
	"errors"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeSurface struct {
	shouldClose bool
	presents    int
}

func (f *fakeSurface) WaitEvents(timeout time.Duration) {}
func (f *fakeSurface) ShouldClose() bool                { return f.shouldClose }
func (f *fakeSurface) Present()                         { f.presents++ }

type fakeRenderer struct {
	models []mgl32.Mat4
	err    error
}

func (f *fakeRenderer) Render(model mgl32.Mat4, dt float64) error {
	if f.err != nil {
		return f.err
	}
	f.models = append(f.models, model)
	return nil
}

func TestTimerElapsedRendersExactlyOnce(t *testing.T) {
	fs := &fakeSurface{}
	fr := &fakeRenderer{}
	a := New(fs, fr)

	if err := a.dispatch(EventInitialized); err != nil {
		t.Fatalf("init dispatch failed: %v", err)
	}
	if err := a.dispatch(EventTimerElapsed); err != nil {
		t.Fatalf("tick dispatch failed: %v", err)
	}

	if len(fr.models) != 1 {
		t.Fatalf("got %d draws, want 1", len(fr.models))
	}
	if fs.presents != 1 {
		t.Fatalf("got %d presents, want 1", fs.presents)
	}
	// frame is drawn with the pre-advance model, then the angle steps
	if !fr.models[0].ApproxEqual(mgl32.Ident4()) {
		t.Fatalf("first frame model: got %v, want identity", fr.models[0])
	}
	if a.spinner.Angle() == 0 {
		t.Fatalf("angle did not advance after tick")
	}
	if !a.pacer.Deadline().After(time.Now().Add(-time.Millisecond)) {
		t.Fatalf("timer was not re-armed")
	}
}

func TestCloseRequestedStopsDraws(t *testing.T) {
	fs := &fakeSurface{}
	fr := &fakeRenderer{}
	a := New(fs, fr)

	if err := a.dispatch(EventCloseRequested); err != nil {
		t.Fatalf("close dispatch failed: %v", err)
	}
	if a.state != StateExiting {
		t.Fatalf("got state %d, want StateExiting", a.state)
	}

	// a pending timer must not draw once the loop is exiting
	if err := a.dispatch(EventTimerElapsed); err != nil {
		t.Fatalf("post-close dispatch failed: %v", err)
	}
	if len(fr.models) != 0 || fs.presents != 0 {
		t.Fatalf("drew %d frames after close, want 0", len(fr.models))
	}
}

func TestIgnoredEventChangesNothing(t *testing.T) {
	fs := &fakeSurface{}
	fr := &fakeRenderer{}
	a := New(fs, fr)

	before := a.spinner.Angle()
	if err := a.dispatch(EventIgnored); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if a.state != StateRunning {
		t.Fatalf("state changed on ignored event")
	}
	if a.spinner.Angle() != before {
		t.Fatalf("angle changed on ignored event")
	}
	if len(fr.models) != 0 || fs.presents != 0 {
		t.Fatalf("ignored event triggered a draw/present cycle")
	}
}

func TestRenderFailureAborts(t *testing.T) {
	fs := &fakeSurface{}
	fr := &fakeRenderer{err: errors.New("lost context")}
	a := New(fs, fr)

	err := a.dispatch(EventTimerElapsed)
	if err == nil {
		t.Fatalf("expected draw failure to propagate")
	}
	if fs.presents != 0 {
		t.Fatalf("presented a frame after a failed draw")
	}
}

func TestRunExitsCleanlyOnClose(t *testing.T) {
	fs := &fakeSurface{shouldClose: true}
	fr := &fakeRenderer{}
	a := New(fs, fr)

	if err := a.Run(); err != nil {
		t.Fatalf("Run returned error on clean close: %v", err)
	}
	if len(fr.models) != 0 {
		t.Fatalf("drew %d frames after immediate close, want 0", len(fr.models))
	}
}

func TestClassifyWakeup(t *testing.T) {
	fs := &fakeSurface{}
	a := New(fs, &fakeRenderer{})

	a.pacer.deadline = time.Now().Add(time.Hour)
	if ev := a.classifyWakeup(time.Now()); ev != EventIgnored {
		t.Fatalf("early wakeup: got event %d, want EventIgnored", ev)
	}

	a.pacer.deadline = time.Now().Add(-time.Millisecond)
	if ev := a.classifyWakeup(time.Now()); ev != EventTimerElapsed {
		t.Fatalf("past deadline: got event %d, want EventTimerElapsed", ev)
	}

	fs.shouldClose = true
	if ev := a.classifyWakeup(time.Now()); ev != EventCloseRequested {
		t.Fatalf("close pending: got event %d, want EventCloseRequested", ev)
	}
}

func TestPacerRearm(t *testing.T) {
	p := NewPacer()
	now := time.Now()
	p.Rearm(now)
	if got, want := p.Deadline(), now.Add(p.Period()); !got.Equal(want) {
		t.Fatalf("deadline: got %v, want %v", got, want)
	}
	if p.Period() != time.Second/60 {
		t.Fatalf("period: got %v, want %v", p.Period(), time.Second/60)
	}
}
