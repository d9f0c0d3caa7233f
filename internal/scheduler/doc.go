// Package scheduler drives the daily pipeline cycle. One cooperative
// control loop polls the clock at a fixed cadence, waits for the
// trigger instant, runs the ordered step sequence (halting on the first
// failure), and reschedules exactly one day after the previous trigger
// so the daily cadence never drifts, however long a cycle ran.
//
// Cancellation is cooperative: the context is observed at poll
// boundaries only, so an in-progress cycle finishes its current step
// sequence before the loop stops. Step failures never terminate the
// loop; only a missing trigger configuration is fatal, and that is
// rejected before the loop starts.
package scheduler
