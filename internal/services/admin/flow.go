package admin

import (
	"context"
	"errors"
	"sync"

	"github.com/louisbranch/storeadmin/internal/services/admin/mutation"
)

// Decision values posted by confirmation dialogs.
const (
	decisionConfirm = "confirm"
	decisionCancel  = "cancel"
)

var errNoRequestFlow = errors.New("confirmation requires a request flow")

// requestFlow collects what an orchestrator asked of the UI during one
// request: where to navigate and which confirmation to show.
type requestFlow struct {
	decision string

	mu       sync.Mutex
	navigate string
	prompt   *mutation.Prompt
}

type flowContextKey struct{}

// withRequestFlow attaches a flow answering confirmations with decision. A
// blank decision means the operator has not been asked yet.
func withRequestFlow(ctx context.Context, decision string) (context.Context, *requestFlow) {
	flow := &requestFlow{decision: decision}
	return context.WithValue(ctx, flowContextKey{}, flow), flow
}

func requestFlowFromContext(ctx context.Context) *requestFlow {
	flow, _ := ctx.Value(flowContextKey{}).(*requestFlow)
	return flow
}

// Navigation returns the requested path, if any.
func (f *requestFlow) Navigation() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.navigate
}

// Prompt returns the confirmation that still needs an answer.
func (f *requestFlow) Prompt() (mutation.Prompt, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.prompt == nil {
		return mutation.Prompt{}, false
	}
	return *f.prompt, true
}

// flowNavigator records navigation on the request flow; the handler turns it
// into a redirect.
type flowNavigator struct{}

func (flowNavigator) Navigate(ctx context.Context, path string) {
	flow := requestFlowFromContext(ctx)
	if flow == nil {
		return
	}
	flow.mu.Lock()
	defer flow.mu.Unlock()
	flow.navigate = path
}

// flowConfirmer answers with the posted decision. Without one it records the
// prompt and declines, so the handler renders the dialog.
type flowConfirmer struct{}

func (flowConfirmer) Confirm(ctx context.Context, prompt mutation.Prompt) (bool, error) {
	flow := requestFlowFromContext(ctx)
	if flow == nil {
		return false, errNoRequestFlow
	}
	switch flow.decision {
	case decisionConfirm:
		return true, nil
	case decisionCancel:
		return false, nil
	}
	flow.mu.Lock()
	defer flow.mu.Unlock()
	flow.prompt = &prompt
	return false, nil
}
