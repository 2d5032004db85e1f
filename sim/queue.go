// Implements the WaitQueue, which holds jobs waiting for a CPU run on one lane.
// Jobs are enqueued on arrival and re-enqueued at the tail after a preempted run.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue represents a FIFO queue of jobs waiting for their next CPU run.
type WaitQueue struct {
	queue []Job // FIFO queue of jobs
}

// Enqueue adds a job to the back of the wait queue.
func (wq *WaitQueue) Enqueue(j Job) {
	wq.queue = append(wq.queue, j)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of jobs in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Peek returns the job at the front of the queue without removing it.
// The boolean is false if the queue is empty.
func (wq *WaitQueue) Peek() (Job, bool) {
	if len(wq.queue) == 0 {
		return Job{}, false
	}
	return wq.queue[0], true
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers
// MUST NOT append to or reslice it.
func (wq *WaitQueue) Items() []Job {
	return wq.queue
}

// Dequeue removes the job at the front of the queue.
// The boolean is false if the queue is empty.
func (wq *WaitQueue) Dequeue() (Job, bool) {
	if len(wq.queue) == 0 {
		return Job{}, false
	}
	j := wq.queue[0]
	wq.queue[0] = Job{}
	wq.queue = wq.queue[1:]
	return j, true
}
