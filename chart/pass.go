package chart

import (
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/statekit"
)

// Render pass states. A pass always starts unvalidated and ends in either
// legendDrawn or failed.
const (
	stateUnvalidated    statekit.StateID = "unvalidated"
	stateValidated      statekit.StateID = "validated"
	stateLayoutComputed statekit.StateID = "layout_computed"
	stateLabelsDrawn    statekit.StateID = "labels_drawn"
	statePlotDrawn      statekit.StateID = "plot_drawn"
	stateLegendDrawn    statekit.StateID = "legend_drawn"
	stateFailed         statekit.StateID = "failed"
)

const (
	eventValidated   statekit.EventType = "VALIDATED"
	eventLaidOut     statekit.EventType = "LAID_OUT"
	eventLabelsDrawn statekit.EventType = "LABELS_DRAWN"
	eventPlotDrawn   statekit.EventType = "PLOT_DRAWN"
	eventLegendDrawn statekit.EventType = "LEGEND_DRAWN"
	eventFail        statekit.EventType = "FAIL"
)

var eventTargets = map[statekit.EventType]statekit.StateID{
	eventValidated:   stateValidated,
	eventLaidOut:     stateLayoutComputed,
	eventLabelsDrawn: stateLabelsDrawn,
	eventPlotDrawn:   statePlotDrawn,
	eventLegendDrawn: stateLegendDrawn,
	eventFail:        stateFailed,
}

type passContext struct {
	chart  string
	logger *slog.Logger
	// trace lists the states entered, in order.
	trace []statekit.StateID
}

func logEntry(ctx **passContext, ev statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	c := *ctx
	state, ok := eventTargets[ev.Type]
	if !ok {
		state = stateUnvalidated
	}
	c.trace = append(c.trace, state)
	attrs := []any{"chart", c.chart, "state", string(state)}
	if err, ok := ev.Payload.(error); ok {
		attrs = append(attrs, "err", err)
	}
	if skipped, ok := ev.Payload.(bool); ok && skipped {
		attrs = append(attrs, "skipped", true)
	}
	c.logger.Debug("render pass", attrs...)
}

func newPassMachine() (*statekit.MachineConfig[*passContext], error) {
	return statekit.NewMachine[*passContext]("render").
		WithInitial(stateUnvalidated).
		WithContext(&passContext{}).
		WithAction("logEntry", logEntry).
		State(stateUnvalidated).
			OnEntry("logEntry").
			On(eventValidated).Target(stateValidated).
			On(eventFail).Target(stateFailed).
			Done().
		State(stateValidated).
			OnEntry("logEntry").
			On(eventLaidOut).Target(stateLayoutComputed).
			On(eventFail).Target(stateFailed).
			Done().
		State(stateLayoutComputed).
			OnEntry("logEntry").
			On(eventLabelsDrawn).Target(stateLabelsDrawn).
			Done().
		State(stateLabelsDrawn).
			OnEntry("logEntry").
			On(eventPlotDrawn).Target(statePlotDrawn).
			Done().
		State(statePlotDrawn).
			OnEntry("logEntry").
			On(eventLegendDrawn).Target(stateLegendDrawn).
			Done().
		State(stateLegendDrawn).
			Final().
			OnEntry("logEntry").
			Done().
		State(stateFailed).
			Final().
			OnEntry("logEntry").
			Done().
		Build()
}

// pass is one render pass. Every step has to be reported in order; a step
// the current state does not accept is a programming error and is
// returned as such.
type pass struct {
	interp *statekit.Interpreter[*passContext]
	ctx    *passContext
}

func startPass(chart string, logger *slog.Logger) (*pass, error) {
	machine, err := newPassMachine()
	if err != nil {
		return nil, fmt.Errorf("building render pass: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx := &passContext{chart: chart, logger: logger}
	interp := statekit.NewInterpreter(machine)
	interp.UpdateContext(func(c **passContext) {
		*c = ctx
	})
	interp.Start()
	return &pass{interp: interp, ctx: ctx}, nil
}

func (p *pass) advance(ev statekit.EventType, payload any) error {
	p.interp.Send(statekit.Event{Type: ev, Payload: payload})
	if want := eventTargets[ev]; !p.interp.Matches(want) {
		return fmt.Errorf("render pass: %s not allowed in state %s", ev, p.interp.State().Value)
	}
	return nil
}

// fail moves the pass to its failed state and returns err unchanged.
func (p *pass) fail(err error) error {
	p.interp.Send(statekit.Event{Type: eventFail, Payload: err})
	return err
}

func (p *pass) state() statekit.StateID {
	return p.interp.State().Value
}

func (p *pass) done() bool {
	return p.interp.Done()
}
