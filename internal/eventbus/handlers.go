package eventbus

import "pocket-calc/internal/logger"

// HandlerFunc adapts a function to EventHandler under a fixed id
type HandlerFunc struct {
	ID string
	Fn func(Event)
}

func (h HandlerFunc) Handle(event Event) { h.Fn(event) }
func (h HandlerFunc) GetID() string      { return h.ID }

// LogHandler writes every event it receives to the debug log
type LogHandler struct {
	logger logger.Logger
}

func NewLogHandler(log logger.Logger) *LogHandler {
	return &LogHandler{logger: log}
}

func (l *LogHandler) Handle(event Event) {
	fields := make(map[string]interface{}, len(event.Data)+1)
	for k, v := range event.Data {
		fields[k] = v
	}
	fields["at"] = event.Timestamp

	l.logger.Debug("EventLog", event.Type, fields)
}

func (l *LogHandler) GetID() string {
	return "event-log"
}

// SubscribeAll registers h for every event type the application publishes
func SubscribeAll(b *Bus, h EventHandler) {
	for _, t := range []string{KeyPressed, ResultComputed, ScreenChanged, ConfigReloaded} {
		b.Subscribe(t, h)
	}
}
