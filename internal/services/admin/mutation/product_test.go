package mutation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
	"github.com/louisbranch/storeadmin/internal/services/admin/routepath"
)

func TestUpdateVariantRefetchesProductBeforeContinuation(t *testing.T) {
	t.Parallel()

	invalidator := &fakeInvalidator{delay: 30 * time.Millisecond}
	notifier := &fakeNotifier{}
	actions := NewProductActions("prod_1", &fakeProductClient{}, Deps{Notifier: notifier, Invalidator: invalidator, Localizer: keyLocalizer{}})

	sawFresh := false
	title := "Large"
	err := actions.UpdateVariant(context.Background(), "var_1", commerce.VariantPatch{Title: &title}, Then(func() {
		sawFresh = invalidator.finished()
	}))
	if err != nil {
		t.Fatalf("update variant: %v", err)
	}
	if !sawFresh {
		t.Fatal("continuation ran before the product refetch resolved")
	}
	if got := invalidator.calls(); len(got) != 1 || got[0] != "products/prod_1" {
		t.Fatalf("invalidations = %v", got)
	}
	if sent := notifier.all(); len(sent) != 1 || sent[0].msg != "product.variant.updated" {
		t.Fatalf("notifications = %+v", sent)
	}
}

func TestVariantOperationsInvalidateParent(t *testing.T) {
	t.Parallel()

	invalidator := &fakeInvalidator{}
	client := &fakeProductClient{}
	actions := NewProductActions("prod_1", client, Deps{Notifier: &fakeNotifier{}, Invalidator: invalidator})

	if err := actions.AddVariant(context.Background(), commerce.VariantInput{Title: "S"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := actions.DeleteVariant(context.Background(), "var_2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := invalidator.calls(); len(got) != 2 {
		t.Fatalf("invalidations = %v, want 2", got)
	}
	if len(client.createdIn) != 1 || client.createdIn[0].Title != "S" {
		t.Fatalf("created = %+v", client.createdIn)
	}
}

func TestVariantFailureSkipsInvalidation(t *testing.T) {
	t.Parallel()

	invalidator := &fakeInvalidator{}
	notifier := &fakeNotifier{}
	actions := NewProductActions("prod_1", &fakeProductClient{err: errors.New("network down")}, Deps{Notifier: notifier, Invalidator: invalidator, Localizer: keyLocalizer{}})

	called := false
	if err := actions.AddVariant(context.Background(), commerce.VariantInput{}, Then(func() { called = true })); err == nil {
		t.Fatal("expected error")
	}
	if called || len(invalidator.calls()) != 0 {
		t.Fatal("failure must not invalidate or continue")
	}
	sent := notifier.all()
	if len(sent) != 1 || sent[0].msg != keyErrorGeneric || sent[0].kind != KindError {
		t.Fatalf("notifications = %+v", sent)
	}
}

func TestUpdateDoesNotInvalidate(t *testing.T) {
	t.Parallel()

	invalidator := &fakeInvalidator{}
	actions := NewProductActions("prod_1", &fakeProductClient{}, Deps{Notifier: &fakeNotifier{}, Invalidator: invalidator})

	called := false
	title := "Shirt"
	if err := actions.Update(context.Background(), commerce.ProductPatch{Title: &title}, Then(func() { called = true })); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !called {
		t.Fatal("continuation must run")
	}
	if len(invalidator.calls()) != 0 {
		t.Fatal("update must not invalidate")
	}
}

func TestToggleStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current commerce.ProductStatus
		want    commerce.ProductStatus
		message string
	}{
		{name: "publish draft", current: commerce.ProductDraft, want: commerce.ProductPublished, message: "product.status.published"},
		{name: "publish proposed", current: commerce.ProductProposed, want: commerce.ProductPublished, message: "product.status.published"},
		{name: "draft published", current: commerce.ProductPublished, want: commerce.ProductDraft, message: "product.status.drafted"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := &fakeProductClient{}
			notifier := &fakeNotifier{}
			actions := NewProductActions("prod_1", client, Deps{Notifier: notifier, Localizer: keyLocalizer{}})
			if err := actions.ToggleStatus(context.Background(), tc.current); err != nil {
				t.Fatalf("toggle: %v", err)
			}
			if len(client.patches) != 1 || client.patches[0].Status == nil || *client.patches[0].Status != tc.want {
				t.Fatalf("patches = %+v", client.patches)
			}
			if sent := notifier.all(); len(sent) != 1 || sent[0].msg != tc.message {
				t.Fatalf("notifications = %+v", sent)
			}
		})
	}
}

func TestDeleteProductDeclinedIsSilent(t *testing.T) {
	t.Parallel()

	client := &fakeProductClient{}
	notifier := &fakeNotifier{}
	navigator := &fakeNavigator{}
	confirmer := &fakeConfirmer{answer: false}
	actions := NewProductActions("prod_1", client, Deps{Notifier: notifier, Navigator: navigator, Confirmer: confirmer})

	if err := actions.Delete(context.Background()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(confirmer.prompts) != 1 {
		t.Fatal("expected one confirmation prompt")
	}
	if client.deleted != 0 || len(notifier.all()) != 0 || len(navigator.paths) != 0 {
		t.Fatal("declined confirmation must have no side effects")
	}
}

func TestDeleteProductConfirmedNavigatesToList(t *testing.T) {
	t.Parallel()

	client := &fakeProductClient{}
	notifier := &fakeNotifier{}
	navigator := &fakeNavigator{}
	invalidator := &fakeInvalidator{}
	actions := NewProductActions("prod_1", client, Deps{
		Notifier:    notifier,
		Navigator:   navigator,
		Invalidator: invalidator,
		Confirmer:   &fakeConfirmer{answer: true},
		Localizer:   keyLocalizer{},
	})

	if err := actions.Delete(context.Background()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if client.deleted != 1 {
		t.Fatalf("deleted = %d", client.deleted)
	}
	if len(navigator.paths) != 1 || navigator.paths[0] != routepath.Products {
		t.Fatalf("navigations = %v", navigator.paths)
	}
	if len(invalidator.calls()) != 0 {
		t.Fatal("delete navigates instead of refetching")
	}
	if sent := notifier.all(); len(sent) != 1 || sent[0].msg != "product.deleted" {
		t.Fatalf("notifications = %+v", sent)
	}
}

func TestDeleteProductFailureStays(t *testing.T) {
	t.Parallel()

	navigator := &fakeNavigator{}
	notifier := &fakeNotifier{}
	actions := NewProductActions("prod_1", &fakeProductClient{err: errors.New("boom")}, Deps{
		Notifier:  notifier,
		Navigator: navigator,
		Confirmer: &fakeConfirmer{answer: true},
	})
	if err := actions.Delete(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(navigator.paths) != 0 {
		t.Fatal("failure must not navigate")
	}
	if sent := notifier.all(); len(sent) != 1 || sent[0].kind != KindError {
		t.Fatalf("notifications = %+v", sent)
	}
}

func TestMessageFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "structured", err: &commerce.APIError{Message: "SKU taken"}, want: "SKU taken"},
		{name: "wrapped structured", err: errors.Join(errors.New("ctx"), &commerce.APIError{Message: "Nope"}), want: "Nope"},
		{name: "blank structured", err: &commerce.APIError{}, want: keyErrorGeneric},
		{name: "plain", err: errors.New("dial tcp"), want: keyErrorGeneric},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := MessageFromError(keyLocalizer{}, tc.err); got != tc.want {
				t.Fatalf("message = %q, want %q", got, tc.want)
			}
		})
	}
}
