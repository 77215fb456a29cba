package mutation

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/storeadmin/internal/services/admin/mutation"

// Deps are the collaborators shared by every orchestrator.
type Deps struct {
	Notifier    Notifier
	Invalidator Invalidator
	Navigator   Navigator
	Confirmer   Confirmer
	Localizer   Localizer
	// Tracer defaults to the global provider.
	Tracer trace.Tracer
}

// operation describes how one slot completes.
type operation struct {
	name       string
	slot       Slot
	successKey string
	// invalidate is the cache key refetched before the continuation.
	invalidate string
	// navigate is the path visited after success.
	navigate   string
	attributes []attribute.KeyValue
}

type runner struct {
	deps  Deps
	slots slots
}

func newRunner(deps Deps) runner {
	if deps.Tracer == nil {
		deps.Tracer = otel.Tracer(tracerName)
	}
	return runner{deps: deps}
}

// run executes call inside op's slot and applies the completion contract.
func (r *runner) run(ctx context.Context, op operation, call func(context.Context) error, opts []CallOption) error {
	if !r.slots.acquire(op.slot) {
		return fmt.Errorf("%s: %w", op.name, ErrInFlight)
	}
	defer r.slots.release(op.slot)

	options := collectOptions(opts)
	ctx, span := r.deps.Tracer.Start(ctx, "mutation."+op.name, trace.WithAttributes(op.attributes...))
	defer span.End()

	if err := call(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.notify(ctx, keyErrorTitle, MessageFromError(r.deps.Localizer, err), KindError)
		return fmt.Errorf("%s: %w", op.name, err)
	}

	msg := options.message
	if msg == "" {
		msg = translate(r.deps.Localizer, op.successKey)
	}
	r.notify(ctx, keySuccessTitle, msg, KindSuccess)

	if op.invalidate != "" && r.deps.Invalidator != nil {
		// The write already succeeded; a failed refetch leaves the entry
		// stale for the next read.
		if err := r.deps.Invalidator.Invalidate(ctx, op.invalidate); err != nil {
			span.AddEvent("invalidate failed", trace.WithAttributes(attribute.String("cache.key", op.invalidate)))
			log.Printf("invalidate %s after %s: %v", op.invalidate, op.name, err)
		}
	}
	if op.navigate != "" && r.deps.Navigator != nil {
		r.deps.Navigator.Navigate(ctx, op.navigate)
	}
	if options.then != nil {
		options.then()
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

func (r *runner) notify(ctx context.Context, titleKey string, msg string, kind NotificationKind) {
	if r.deps.Notifier == nil {
		return
	}
	r.deps.Notifier.Notify(ctx, translate(r.deps.Localizer, titleKey), msg, kind)
}
