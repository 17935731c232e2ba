package controllers

import (
	"pocket-calc/internal/calculator"
	"pocket-calc/internal/eventbus"
	"pocket-calc/internal/logger"
)

// DisplayView renders the calculator readout
type DisplayView interface {
	SetDisplay(text string)
}

// EventPublisher accepts application events without blocking
type EventPublisher interface {
	Publish(event eventbus.Event) bool
}

// CalculatorController applies key input to the accumulator and re-renders
// the readout after every key. All calls must come from the UI goroutine.
type CalculatorController struct {
	accumulator *calculator.Accumulator
	view        DisplayView
	events      EventPublisher
	logger      logger.Logger
}

func NewCalculatorController(acc *calculator.Accumulator, view DisplayView, events EventPublisher, log logger.Logger) *CalculatorController {
	cc := &CalculatorController{
		accumulator: acc,
		view:        view,
		events:      events,
		logger:      log,
	}
	cc.render()
	return cc
}

// HandleKey applies one keypad label or keyboard alias. Unrecognised input
// leaves the accumulator untouched and returns calculator.ErrUnknownKey.
func (cc *CalculatorController) HandleKey(label string) error {
	key, err := calculator.ParseKey(label)
	if err != nil {
		cc.logger.Debug("CalculatorController", "ignored key", map[string]interface{}{
			"key": label,
		})
		return err
	}

	before := cc.accumulator.Snapshot()
	cc.accumulator.Press(key)
	display := cc.render()

	cc.publish(eventbus.KeyPressed, map[string]interface{}{
		"key":     key.Label(),
		"display": display,
	})

	if computed(key, before) {
		cc.logger.Debug("CalculatorController", "result computed", map[string]interface{}{
			"operator": before.Pending.String(),
			"result":   display,
		})
		cc.publish(eventbus.ResultComputed, map[string]interface{}{
			"operator": before.Pending.String(),
			"lhs":      before.Stored,
			"rhs":      before.Display,
			"result":   display,
		})
	}

	return nil
}

// computed reports whether pressing key from state before applied an operator
func computed(key calculator.Key, before calculator.State) bool {
	if !before.HasPending || !before.HasStored {
		return false
	}
	return key.Kind == calculator.EqualsKey || key.Kind == calculator.OperatorKey
}

// SetMaxDigits updates the entry cap, typically after a configuration reload
func (cc *CalculatorController) SetMaxDigits(n int) {
	cc.accumulator.SetMaxDigits(n)
}

func (cc *CalculatorController) Display() string {
	return cc.accumulator.Display()
}

func (cc *CalculatorController) State() calculator.State {
	return cc.accumulator.Snapshot()
}

func (cc *CalculatorController) render() string {
	display := cc.accumulator.Display()
	if cc.view != nil {
		cc.view.SetDisplay(display)
	}
	return display
}

func (cc *CalculatorController) publish(eventType string, data map[string]interface{}) {
	if cc.events == nil {
		return
	}
	cc.events.Publish(eventbus.Event{Type: eventType, Data: data})
}
