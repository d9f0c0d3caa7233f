// Package pipeline runs the per-user analysis workflow: stage each
// eligible user's inventory sources into a scratch directory, build the
// analysis prompt, call the generation model through the failover
// client, persist the resulting alert, email the user, and hand the
// scratch directory to the cleanup executor. One user's failure never
// stops the run; the workflow always finishes with a cycle summary.
package pipeline
