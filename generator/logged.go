package generator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/supervillain/action"
)

// Monitor logs the duration of every step of its generator at debug level.
type Monitor struct {
	g          Generator
	logger     *slog.Logger
	iterations int
}

var (
	_ Generator = (*Monitor)(nil)
	_ Stateful  = (*Monitor)(nil)
)

// Logged wraps g; a nil logger uses slog.Default().
func Logged(g Generator, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{g: g, logger: logger.With("generator", g.String())}
}

func (m *Monitor) Step(cfg action.Configuration) (action.Configuration, error) {
	start := time.Now()
	out, err := m.g.Step(cfg)
	if err != nil {
		m.logger.Error("step failed", "iteration", m.iterations, "error", err)
		return action.Configuration{}, err
	}
	m.logger.Debug("step", "iteration", m.iterations, "elapsed", time.Since(start))
	m.iterations++
	return out, nil
}

func (m *Monitor) InlineObservables(steps int) map[string][][]float64 {
	return m.g.InlineObservables(steps)
}

func (m *Monitor) Report() string { return m.g.Report() }
func (m *Monitor) String() string { return fmt.Sprintf("Logged(%v)", m.g) }

func (m *Monitor) MarshalState() ([]byte, error) { return marshalChildren([]Generator{m.g}) }

func (m *Monitor) UnmarshalState(data []byte) error {
	return unmarshalChildren([]Generator{m.g}, data)
}
