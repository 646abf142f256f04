package poller

import (
	"fmt"

	"hwbot/internal/homework"
)

// NoChangeMessage is sent when a fetch returns no updated submissions.
const NoChangeMessage = "Статус проверки не изменился."

// StartupMessage is announced once before polling starts.
const StartupMessage = "Work harder"

// FailureMessage formats a loop-level failure for the chat.
func FailureMessage(err error) string {
	return fmt.Sprintf("Сбой в работе программы: %v", err)
}

// State is carried between iterations.
type State struct {
	// Timestamp is the from_date of the next fetch (unix seconds). It changes
	// only when a successful response carries current_date.
	Timestamp int64
	// LastMessage is the last delivered text, used for dedup.
	LastMessage string
}

// Decision describes what an iteration wants to send.
type Decision struct {
	Kind    ResultKind
	Message string
	// Notify is false for quiet iterations and for messages equal to
	// State.LastMessage.
	Notify bool
	// Err is the cause of a quiet or failed iteration.
	Err error
}

// Step computes the next state and the notification decision for res.
// LastMessage is left untouched; Commit applies it once delivery is known.
func Step(st State, res Result) (State, Decision) {
	switch res.Kind {
	case ResultQuiet:
		return st, Decision{Kind: ResultQuiet, Err: res.Err}
	case ResultFailure:
		return st, decide(st, ResultFailure, FailureMessage(res.Err), res.Err)
	}

	if res.HasCurrentDate {
		st.Timestamp = res.CurrentDate
	}
	if len(res.Homeworks) == 0 {
		return st, decide(st, ResultSuccess, NoChangeMessage, nil)
	}
	msg, err := translate(res.Homeworks[0])
	if err != nil {
		return st, decide(st, ResultFailure, FailureMessage(err), err)
	}
	return st, decide(st, ResultSuccess, msg, nil)
}

func decide(st State, kind ResultKind, msg string, err error) Decision {
	return Decision{Kind: kind, Message: msg, Notify: msg != st.LastMessage, Err: err}
}

func translate(entry any) (string, error) {
	rec, err := homework.Record(entry)
	if err != nil {
		return "", err
	}
	return homework.ParseStatus(rec)
}

// Commit records a delivered message. Undelivered messages are not
// remembered, so the next iteration tries again.
func (st State) Commit(d Decision, delivered bool) State {
	if d.Notify && delivered {
		st.LastMessage = d.Message
	}
	return st
}
