// Package app glues the form session output to the API gateway and the
// client-side store.
//
// Every mutation follows confirm-before-apply: the gateway call runs
// first, and the store changes only when the call succeeds. A failed
// call leaves the store exactly as it was, so the table never shows
// state the server did not confirm. The cost is a round-trip before the
// table updates; the benefit is no client/server divergence.
package app

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/aanand-mishra/user-registration/internal/messages"
	"github.com/aanand-mishra/user-registration/internal/notify"
	"github.com/aanand-mishra/user-registration/internal/store"
	"github.com/aanand-mishra/user-registration/internal/types"
)

// Gateway is the shape of the remote API the orchestrator depends on.
// *client.Client implements it; tests substitute a fake.
type Gateway interface {
	List(ctx context.Context) ([]types.User, error)
	Create(ctx context.Context, user types.User) error
	Update(ctx context.Context, user types.User) error
	Delete(ctx context.Context, id string) error
}

// Notifier receives operation feedback. *notify.Toaster implements it.
type Notifier interface {
	Success(text string)
	Error(text string)
}

var _ Notifier = (*notify.Toaster)(nil)

// App coordinates one user action at a time against the gateway and the
// store.
type App struct {
	store    *store.Users
	gateway  Gateway
	notifier Notifier
	log      *slog.Logger

	inFlight atomic.Bool
}

// New wires an orchestrator. log must be non-nil.
func New(users *store.Users, gw Gateway, n Notifier, log *slog.Logger) *App {
	return &App{store: users, gateway: gw, notifier: n, log: log}
}

// Store exposes the collection for the view layer to read.
func (a *App) Store() *store.Users { return a.store }

// InFlight reports whether an action is currently awaiting the gateway.
// It exists so the view can show a loading hint. It does not gate
// re-entrancy: nothing here stops a second submit while one is still
// in flight. Known double-submit window.
func (a *App) InFlight() bool { return a.inFlight.Load() }

// Hydrate loads the full user list from the server, replacing the local
// collection. On failure the collection keeps its previous contents.
func (a *App) Hydrate(ctx context.Context) error {
	a.inFlight.Store(true)
	defer a.inFlight.Store(false)

	users, err := a.gateway.List(ctx)
	if err != nil {
		a.log.Error("fetching users failed", slog.String("error", err.Error()))
		a.notifier.Error(messages.FetchFailed)
		return err
	}

	a.store.ReplaceAll(users)
	a.notifier.Success(messages.UsersFetched)
	return nil
}

// AddOrUpdate persists a finalized record — update when isEdit, create
// otherwise — and on success mirrors it into the store. The record must
// already carry its id (the form session assigns ids before emitting).
func (a *App) AddOrUpdate(ctx context.Context, user types.User, isEdit bool) error {
	a.inFlight.Store(true)
	defer a.inFlight.Store(false)

	var err error
	if isEdit {
		err = a.gateway.Update(ctx, user)
	} else {
		err = a.gateway.Create(ctx, user)
	}

	if err != nil {
		a.log.Error("saving user failed",
			slog.String("id", user.ID),
			slog.Bool("edit", isEdit),
			slog.String("error", err.Error()))
		if isEdit {
			a.notifier.Error(messages.UpdateFailed)
		} else {
			a.notifier.Error(messages.AddFailed)
		}
		return err
	}

	a.store.Upsert(user)
	if isEdit {
		a.notifier.Success(messages.UserUpdated)
	} else {
		a.notifier.Success(messages.UserAdded)
	}
	return nil
}

// Delete removes a user remotely, then locally.
func (a *App) Delete(ctx context.Context, user types.User) error {
	a.inFlight.Store(true)
	defer a.inFlight.Store(false)

	if err := a.gateway.Delete(ctx, user.ID); err != nil {
		a.log.Error("deleting user failed",
			slog.String("id", user.ID),
			slog.String("error", err.Error()))
		a.notifier.Error(messages.DeleteFailed)
		return err
	}

	a.store.Remove(user.ID)
	a.notifier.Success(messages.UserDeleted)
	return nil
}
