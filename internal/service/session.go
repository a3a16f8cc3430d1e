package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitness-tracker/internal/config"
	"fitness-tracker/internal/workout"
)

// SessionService runs batches of sensor packages through the workout dispatcher
type SessionService struct {
	logger *zap.SugaredLogger
}

// NewSessionService creates a new session service
func NewSessionService(logger *zap.SugaredLogger) *SessionService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &SessionService{logger: logger}
}

// Result is the outcome of one package. Exactly one of Summary or Err is set.
type Result struct {
	Index   int
	Package config.Package
	Workout workout.Workout
	Summary workout.Summary
	Err     error
}

// OK reports whether the package produced a summary
func (r Result) OK() bool {
	return r.Err == nil
}

// Session holds the results of one processed batch, in input order
type Session struct {
	RunID   uuid.UUID
	Results []Result
}

// Process dispatches every package independently. A failing package is
// recorded and logged; it never stops the rest of the batch.
func (s *SessionService) Process(packages []config.Package) *Session {
	session := &Session{
		RunID:   uuid.New(),
		Results: make([]Result, 0, len(packages)),
	}
	log := s.logger.With("run_id", session.RunID.String())

	for i, p := range packages {
		res := Result{Index: i, Package: p}

		w, err := workout.Build(p.Kind, p.Fields)
		if err == nil {
			res.Workout = w
			res.Summary, err = w.Summary()
		}

		if err != nil {
			res.Err = fmt.Errorf("package %d (%s): %w", i, p.Kind, err)
			log.Errorw("rejected workout package",
				"index", i,
				"kind", p.Kind,
				"fields", p.Fields,
				"error", err,
			)
		} else {
			log.Debugw("computed workout summary",
				"index", i,
				"kind", res.Summary.Label,
				"distance_km", res.Summary.Distance,
				"calories", res.Summary.Calories,
			)
		}

		session.Results = append(session.Results, res)
	}

	log.Infow("session processed",
		"packages", len(packages),
		"failed", len(session.Failed()),
	)
	return session
}

// Succeeded returns the results that produced a summary
func (s *Session) Succeeded() []Result {
	var out []Result
	for _, r := range s.Results {
		if r.OK() {
			out = append(out, r)
		}
	}
	return out
}

// Failed returns the results that were rejected
func (s *Session) Failed() []Result {
	var out []Result
	for _, r := range s.Results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}

// Err joins every package error, or returns nil if all succeeded
func (s *Session) Err() error {
	var errs []error
	for _, r := range s.Failed() {
		errs = append(errs, r.Err)
	}
	return errors.Join(errs...)
}

// WriteMessages writes one summary line per successful package
func (s *Session) WriteMessages(w io.Writer) error {
	for _, r := range s.Succeeded() {
		if _, err := fmt.Fprintln(w, r.Summary.Message()); err != nil {
			return fmt.Errorf("writing summary %d: %w", r.Index, err)
		}
	}
	return nil
}
