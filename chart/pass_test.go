package chart

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/felixgeelhaar/statekit"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPassOrder(t *testing.T) {
	p, err := startPass("ok", quietLogger())
	assert(t, err == nil, "cannot start pass:", err)
	assert(t, p.state() == stateUnvalidated, "pass starts in", p.state())

	for _, ev := range []struct {
		event statekit.EventType
		want  statekit.StateID
	}{
		{eventValidated, stateValidated},
		{eventLaidOut, stateLayoutComputed},
		{eventLabelsDrawn, stateLabelsDrawn},
		{eventPlotDrawn, statePlotDrawn},
		{eventLegendDrawn, stateLegendDrawn},
	} {
		err := p.advance(ev.event, nil)
		assert(t, err == nil, "cannot advance:", ev.event, err)
		assert(t, p.state() == ev.want, "wrong state after", ev.event, p.state())
	}
	assert(t, p.done(), "pass not done")
	trace := p.ctx.trace
	assert(t, len(trace) >= 5 && trace[len(trace)-1] == stateLegendDrawn, "wrong trace:", trace)
}

func TestPassOutOfOrder(t *testing.T) {
	p, err := startPass("skipping", quietLogger())
	assert(t, err == nil, "cannot start pass:", err)
	err = p.advance(eventLabelsDrawn, nil)
	assert(t, err != nil, "labels drawn before layout")
	assert(t, p.state() == stateUnvalidated, "state changed:", p.state())
}

func TestPassFail(t *testing.T) {
	p, err := startPass("failing", quietLogger())
	assert(t, err == nil, "cannot start pass:", err)
	boom := errors.New("boom")
	assert(t, p.fail(boom) == boom, "error not passed through")
	assert(t, p.state() == stateFailed && p.done(), "pass not failed:", p.state())
}
