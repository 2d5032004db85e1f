// Round-robin preemptive dispatch over the two lanes: arrival admission,
// CPU run start, and CPU run end (preemption or completion).

package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/timeshare-sim/timeshare-sim/sim/trace"
)

// Arrive admits a new job from a terminal, places it on a randomly chosen
// lane, and starts a run on any idle lane with waiting work.
func (sim *Simulator) Arrive() {
	now := sim.Now()
	job := Job{
		ID:               sim.nextJobID,
		ArrivalTime:      now,
		RemainingService: sim.variates.Exponential(sim.Config.MeanService, StreamService),
	}
	sim.nextJobID++
	sim.Stats.Admitted++

	id := sim.chooseLane()
	sim.enqueue(id, job)
	logrus.Debugf("[t=%.4f] << Arrival: %v joins lane %s", now, job, id)
	if sim.Trace != nil {
		sim.Trace.RecordAdmission(trace.AdmissionRecord{
			JobID:            job.ID,
			Lane:             int(id) + 1,
			Time:             now,
			RemainingService: job.RemainingService,
		})
	}

	sim.startIdleLanes()
}

// StartRun moves the head of the lane's wait queue into its service slot
// for at most one quantum and schedules the end of the run.
// Panics if the queue is empty or the slot is occupied.
func (sim *Simulator) StartRun(id LaneID) {
	lane := sim.Lanes[id]
	now := sim.Now()
	job, ok := lane.WaitQ.Dequeue()
	if !ok {
		panic(fmt.Sprintf("StartRun: lane %s has an empty wait queue at t=%v", id, now))
	}
	sim.Stats.QueueLength[id].Set(now, float64(lane.WaitQ.Len()))

	slice := math.Min(sim.Config.Quantum, job.RemainingService)
	duration := slice + sim.Config.SwapOverhead
	// A negative remainder marks the job as done after this run.
	job.RemainingService -= sim.Config.Quantum

	lane.load(job)
	sim.Stats.Occupancy[id].Set(now, 1)
	sim.Events.Schedule(now+duration, EventEndRun, id)

	logrus.Tracef("[t=%.4f] Start run on lane %s: %v for %.4f", now, id, job, duration)
	if sim.Trace != nil {
		sim.Trace.RecordRun(trace.RunRecord{JobID: job.ID, Lane: int(id) + 1, Start: now, Duration: duration})
	}
}

// EndRun removes the job from the lane's service slot. A job still owing
// service goes back to the tail of the same lane's queue; a finished job is
// recorded and its terminal returns to thinking.
// Panics if the slot is empty.
func (sim *Simulator) EndRun(id LaneID) {
	lane := sim.Lanes[id]
	now := sim.Now()
	job := lane.unload()
	sim.Stats.Occupancy[id].Set(now, 0)

	if !job.Finished() {
		sim.enqueue(id, job)
		logrus.Tracef("[t=%.4f] Preempt on lane %s: %v requeued", now, id, job)
		sim.startIdleLanes()
		return
	}

	response := now - job.ArrivalTime
	sim.Stats.Responses[id].Observe(response)
	sim.Events.Schedule(now+sim.variates.Exponential(sim.Config.MeanThink, StreamThink), EventArrival, NoLane)
	sim.Stats.Completed++
	logrus.Debugf("[t=%.4f] >> Completion on lane %s: job#%d response %.4f (%d/%d)",
		now, id, job.ID, response, sim.Stats.Completed, sim.Config.RequiredCompletions)
	if sim.Trace != nil {
		sim.Trace.RecordCompletion(trace.CompletionRecord{JobID: job.ID, Lane: int(id) + 1, Time: now, ResponseTime: response})
	}

	if sim.endingRun() {
		sim.Events.Schedule(now, EventTerminate, NoLane)
		return
	}
	// Only the lane that just freed up is considered here.
	if lane.WaitQ.Len() > 0 {
		sim.StartRun(id)
	}
}

// startIdleLanes starts a run on every idle lane with waiting work,
// checking lane 1 before lane 2.
func (sim *Simulator) startIdleLanes() {
	for _, l := range sim.Lanes {
		if l.NeedsStart() {
			sim.StartRun(l.ID)
		}
	}
}

// chooseLane picks a lane uniformly at random, independent of load.
func (sim *Simulator) chooseLane() LaneID {
	if sim.variates.Uniform(StreamLaneSelect) < 0.5 {
		return Lane1
	}
	return Lane2
}

func (sim *Simulator) enqueue(id LaneID, job Job) {
	lane := sim.Lanes[id]
	lane.WaitQ.Enqueue(job)
	sim.Stats.QueueLength[id].Set(sim.Now(), float64(lane.WaitQ.Len()))
}
