// Package sequence runs ordered "wait, then act" steps across simulation ticks.
//
// A Task never blocks: the tick loop calls Advance with the current simulation
// time and every step whose deadline has been reached runs in order. A step's
// wait is measured from the tick on which the previous step ran.
package sequence

// Step is one suspension point of a task.
type Step struct {
	Wait float64 // seconds after the previous step
	Do   func()
}

// Task is a cancellable list of steps with a step index and a resume deadline.
type Task struct {
	steps    []Step
	index    int
	resumeAt float64
	canceled bool
}

// Start creates a task whose first step runs Wait seconds after now.
func Start(now float64, steps ...Step) *Task {
	t := &Task{steps: steps}
	if len(steps) > 0 {
		t.resumeAt = now + steps[0].Wait
	}
	return t
}

// Advance runs every due step and reports whether the task is finished.
// A step may cancel its own task; no further step runs after that.
func (t *Task) Advance(now float64) bool {
	for !t.canceled && t.index < len(t.steps) && now >= t.resumeAt {
		step := t.steps[t.index]
		t.index++
		if t.index < len(t.steps) {
			t.resumeAt = now + t.steps[t.index].Wait
		}
		if step.Do != nil {
			step.Do()
		}
	}
	return t.Done()
}

// Cancel stops the task before its next step.
func (t *Task) Cancel() {
	t.canceled = true
}

// Canceled reports whether Cancel was called.
func (t *Task) Canceled() bool {
	return t.canceled
}

// Done is true once every step ran or the task was canceled.
func (t *Task) Done() bool {
	return t.canceled || t.index >= len(t.steps)
}

// ResumeAt returns the deadline of the next step.
func (t *Task) ResumeAt() float64 {
	return t.resumeAt
}
