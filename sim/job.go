// Defines the Job value that moves between a lane's wait queue and its service slot.

package sim

import "fmt"

// Job is a unit of CPU work submitted by a terminal.
// A Job lives in exactly one place at a time: a lane's wait queue, a lane's
// service slot, or nowhere once it has completed. It is passed by value.
type Job struct {
	ID               int     // Admission order within a run, starting at 0
	ArrivalTime      float64 // Simulated time the terminal submitted the job
	RemainingService float64 // CPU time still owed; <= 0 after the final run
}

// Finished reports whether the job needs no further CPU runs.
func (j Job) Finished() bool {
	return !(j.RemainingService > 0)
}

func (j Job) String() string {
	return fmt.Sprintf("job#%d(arr=%.4f rem=%.4f)", j.ID, j.ArrivalTime, j.RemainingService)
}
