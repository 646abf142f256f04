package poller

import (
	"context"
	"errors"

	"hwbot/internal/homework"
)

type ResultKind int

const (
	ResultSuccess ResultKind = iota
	// ResultQuiet is a benign "no data" outcome: logged, never notified.
	ResultQuiet
	ResultFailure
)

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultQuiet:
		return "quiet"
	case ResultFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result is the outcome of the fetch+validate stage.
type Result struct {
	Kind ResultKind

	// Success fields.
	Homeworks      []any
	CurrentDate    int64
	HasCurrentDate bool

	// Err is the cause for quiet and failure results.
	Err error
}

func Success(homeworks []any, currentDate int64, hasCurrentDate bool) Result {
	return Result{Kind: ResultSuccess, Homeworks: homeworks, CurrentDate: currentDate, HasCurrentDate: hasCurrentDate}
}

func Quiet(reason error) Result { return Result{Kind: ResultQuiet, Err: reason} }

func Failure(err error) Result { return Result{Kind: ResultFailure, Err: err} }

// Fetcher performs one timestamped fetch.
type Fetcher interface {
	Fetch(ctx context.Context, timestamp int64) (any, error)
}

// Stage fetches statuses changed since timestamp and validates the response.
func Stage(ctx context.Context, f Fetcher, timestamp int64) Result {
	body, err := f.Fetch(ctx, timestamp)
	if err != nil {
		return Failure(err)
	}
	list, err := homework.CheckResponse(body)
	if errors.Is(err, homework.ErrMissingHomeworksKey) {
		return Quiet(err)
	}
	if err != nil {
		return Failure(err)
	}
	date, ok := homework.CurrentDate(body)
	return Success(list, date, ok)
}
