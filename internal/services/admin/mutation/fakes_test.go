package mutation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/text/message"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
)

type notification struct {
	title string
	msg   string
	kind  NotificationKind
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notification
}

func (f *fakeNotifier) Notify(_ context.Context, title string, msg string, kind NotificationKind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, notification{title: title, msg: msg, kind: kind})
}

func (f *fakeNotifier) all() []notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notification(nil), f.sent...)
}

type fakeInvalidator struct {
	mu    sync.Mutex
	delay time.Duration
	keys  []string
	done  bool
	err   error
}

func (f *fakeInvalidator) Invalidate(_ context.Context, key string) error {
	time.Sleep(f.delay)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	f.done = true
	return f.err
}

func (f *fakeInvalidator) finished() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

func (f *fakeInvalidator) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.keys...)
}

type fakeNavigator struct {
	paths []string
}

func (f *fakeNavigator) Navigate(_ context.Context, path string) {
	f.paths = append(f.paths, path)
}

type fakeConfirmer struct {
	answer  bool
	prompts []Prompt
}

func (f *fakeConfirmer) Confirm(_ context.Context, prompt Prompt) (bool, error) {
	f.prompts = append(f.prompts, prompt)
	return f.answer, nil
}

// keyLocalizer echoes keys so assertions can match them.
type keyLocalizer struct{}

func (keyLocalizer) Sprintf(key message.Reference, args ...any) string {
	if len(args) == 0 {
		return fmt.Sprint(key)
	}
	return fmt.Sprint(key) + fmt.Sprint(args...)
}

type fakeTeamClient struct {
	err     error
	block   chan struct{}
	started chan struct{}
	deleted []string
	updated map[string]commerce.UserPatch
}

func (f *fakeTeamClient) wait() {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeTeamClient) UpdateUser(_ context.Context, userID string, patch commerce.UserPatch) (commerce.User, error) {
	if f.updated == nil {
		f.updated = make(map[string]commerce.UserPatch)
	}
	f.updated[userID] = patch
	return commerce.User{ID: userID}, f.err
}

func (f *fakeTeamClient) DeleteUser(_ context.Context, userID string) error {
	f.wait()
	f.deleted = append(f.deleted, userID)
	return f.err
}

func (f *fakeTeamClient) DeleteInvite(_ context.Context, inviteID string) error {
	f.deleted = append(f.deleted, inviteID)
	return f.err
}

func (f *fakeTeamClient) ResendInvite(context.Context, string) error {
	return f.err
}

type fakeProductClient struct {
	err       error
	patches   []commerce.ProductPatch
	deleted   int
	variants  []string
	createdIn []commerce.VariantInput
}

func (f *fakeProductClient) UpdateProduct(_ context.Context, productID string, patch commerce.ProductPatch) (commerce.Product, error) {
	f.patches = append(f.patches, patch)
	return commerce.Product{ID: productID}, f.err
}

func (f *fakeProductClient) DeleteProduct(context.Context, string) error {
	f.deleted++
	return f.err
}

func (f *fakeProductClient) CreateVariant(_ context.Context, productID string, input commerce.VariantInput) (commerce.Product, error) {
	f.createdIn = append(f.createdIn, input)
	return commerce.Product{ID: productID}, f.err
}

func (f *fakeProductClient) UpdateVariant(_ context.Context, productID string, variantID string, _ commerce.VariantPatch) (commerce.Product, error) {
	f.variants = append(f.variants, variantID)
	return commerce.Product{ID: productID}, f.err
}

func (f *fakeProductClient) DeleteVariant(_ context.Context, productID string, variantID string) (commerce.Product, error) {
	f.variants = append(f.variants, variantID)
	return commerce.Product{ID: productID}, f.err
}
