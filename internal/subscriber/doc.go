// Package subscriber holds the data-shaping stages between the
// database and the analysis step: joining accounts with their best
// subscription, filtering down to users who are both subscribed and
// have at least one inventory source, and the JSON relay files the
// step binaries hand each other through the workspace directory.
package subscriber
