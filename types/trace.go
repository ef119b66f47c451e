package types

import "encoding/json"

// TraceStep is one transition of an episode
type TraceStep struct {
	Observation Observation `json:"observation"`
	Action      string      `json:"action"`
	Reward      float64     `json:"reward"`
	Done        bool        `json:"done"`
}

// Trace of an episode as a sequence of transitions
type Trace struct {
	steps []TraceStep
}

func NewTrace() *Trace {
	return &Trace{
		steps: make([]TraceStep, 0),
	}
}

func (t *Trace) Append(obs Observation, action Action, reward float64, done bool) {
	t.steps = append(t.steps, TraceStep{
		Observation: obs.Copy(),
		Action:      action.Hash(),
		Reward:      reward,
		Done:        done,
	})
}

func (t *Trace) Len() int {
	return len(t.steps)
}

func (t *Trace) Get(i int) (TraceStep, bool) {
	if i < 0 || i >= len(t.steps) {
		return TraceStep{}, false
	}
	return t.steps[i], true
}

func (t *Trace) Last() (TraceStep, bool) {
	if len(t.steps) == 0 {
		return TraceStep{}, false
	}
	return t.steps[len(t.steps)-1], true
}

// Return is the total reward collected over the episode
func (t *Trace) Return() float64 {
	total := float64(0)
	for _, s := range t.steps {
		total += s.Reward
	}
	return total
}

func (t *Trace) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.steps)
}

func (t *Trace) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &t.steps)
}
