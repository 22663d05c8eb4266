package contact

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/portfolio/contactmail/pkg/logger"
)

// Result labels reported to a Recorder. Failed deliveries are reported
// with their ErrorKind as the label.
const (
	ResultSent      = "sent"
	ResultInvalid   = "invalid"
	ResultUnhandled = "unhandled"
)

// Recorder observes pipeline results. internal/metrics provides the
// Prometheus implementation.
type Recorder interface {
	ObserveSubmission(result string)
	ObserveDelivery(result string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveSubmission(string)              {}
func (nopRecorder) ObserveDelivery(string, time.Duration) {}

// Service runs the contact pipeline for one submission at a time.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	composer *Composer
	delivery *DeliveryClient
	recorder Recorder
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService wires a composer and a delivery client into a pipeline.
func NewService(composer *Composer, delivery *DeliveryClient, opts ...Option) *Service {
	s := &Service{
		composer: composer,
		delivery: delivery,
		recorder: nopRecorder{},
		logger:   logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleBody decodes a JSON request body and runs the pipeline.
// A body that is not a JSON object yields the unhandled response.
func (s *Service) HandleBody(ctx context.Context, body []byte) Response {
	raw, err := DecodeSubmission(body)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to decode contact submission", slog.String("error", err.Error()))
		s.recorder.ObserveSubmission(ResultUnhandled)
		return UnhandledResponse(err)
	}
	return s.Handle(ctx, raw)
}

// Handle validates, composes and delivers one submission.
// It never panics; unexpected failures map to the unhandled response.
func (s *Service) Handle(ctx context.Context, raw RawSubmission) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "contact pipeline panicked",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			s.recorder.ObserveSubmission(ResultUnhandled)
			resp = UnhandledResponse(r)
		}
	}()

	sub, err := Validate(raw)
	if err != nil {
		s.logger.WarnContext(ctx, "contact submission rejected", slog.String("reason", err.Error()))
		s.recorder.ObserveSubmission(ResultInvalid)
		return MapResponse(err, DeliveryOutcome{})
	}

	msg, err := s.composer.Compose(sub)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to compose contact email", slog.String("error", err.Error()))
		s.recorder.ObserveSubmission(ResultUnhandled)
		return UnhandledResponse(err)
	}

	start := time.Now()
	outcome := s.delivery.Send(ctx, msg, sub.Email)
	result := ResultSent
	if !outcome.Success {
		result = string(outcome.ErrorKind)
	}
	s.recorder.ObserveDelivery(result, time.Since(start))
	s.recorder.ObserveSubmission(result)

	if outcome.Success {
		s.logger.InfoContext(ctx, "contact email sent", slog.String("message_id", outcome.MessageID))
	} else {
		s.logger.ErrorContext(ctx, "contact email delivery failed",
			slog.String("kind", string(outcome.ErrorKind)),
			slog.String("detail", outcome.ErrorDetail),
		)
	}

	return MapResponse(nil, outcome)
}

// Healthcheck reports whether the provider is configured.
func (s *Service) Healthcheck() func(context.Context) error {
	return s.delivery.Healthcheck()
}
