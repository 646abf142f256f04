// Package poller runs the homework status polling loop.
//
// One iteration is split in three parts:
//   - Stage performs the fetch and validation and returns a tagged Result
//     (success, quiet, failure).
//   - Step is a pure function of (State, Result) returning the next State
//     and a Decision about what to send.
//   - Loop applies the Decision through the notifier and commits the
//     delivered message back into State.
//
// Loop is driven by a constant-delay schedule. It never runs two iterations
// at once and never retries inside an iteration; the next tick is the only
// retry mechanism.
package poller
