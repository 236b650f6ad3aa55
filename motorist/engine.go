package motorist

import (
	"bufio"
	"bytes"
	"io"
)

// Engine drives a fixed set of Pistons in lockstep, striping a message and
// associated data across them a crypt-rate/inject-rate chunk at a time.
type Engine struct {
	pistons []*Piston
}

// NewEngine returns an Engine driving pistons.
func NewEngine(pistons []*Piston) *Engine {
	return &Engine{pistons: pistons}
}

// Wrap runs one round: every piston consumes up to its crypt rate from i
// (writing the result to o), then up to its inject rate from a. If either
// stream still has data remaining after the round, every piston is sparked
// in preparation for the next round.
func (e *Engine) Wrap(i *bufio.Reader, o io.Writer, a *bufio.Reader, unwrap bool) error {
	if hasMore(i) {
		for _, p := range e.pistons {
			if err := p.Crypt(i, o, unwrap); err != nil {
				return err
			}
		}
	}
	for _, p := range e.pistons {
		if err := p.Inject(a); err != nil {
			return err
		}
	}
	if hasMore(i) || hasMore(a) {
		for _, p := range e.pistons {
			p.Spark()
		}
	}
	return nil
}

// GetTags writes each piston's tag (of the corresponding length in l) to t,
// in piston order.
func (e *Engine) GetTags(t io.Writer, l []int) error {
	for i, p := range e.pistons {
		if err := p.GetTag(t, l[i]); err != nil {
			return err
		}
	}
	return nil
}

// InjectCollective injects the same data into every piston, optionally
// appending a per-piston diversifier (the piston count and index) so that
// otherwise-identical pistons diverge. Injection proceeds in inject-rate
// chunks, sparking every piston between chunks.
func (e *Engine) InjectCollective(x io.Reader, diversify bool) error {
	data, err := io.ReadAll(x)
	if err != nil {
		return err
	}

	readers := make([]*bufio.Reader, len(e.pistons))
	for i := range e.pistons {
		buf := make([]byte, len(data), len(data)+2)
		copy(buf, data)
		if diversify {
			buf = append(buf, byte(len(e.pistons)), byte(i))
		}
		readers[i] = bufio.NewReader(bytes.NewReader(buf))
	}

	for hasMore(readers[0]) {
		for i, p := range e.pistons {
			if err := p.Inject(readers[i]); err != nil {
				return err
			}
		}
		if hasMore(readers[0]) {
			for _, p := range e.pistons {
				p.Spark()
			}
		}
	}
	return nil
}
