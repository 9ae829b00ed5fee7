// main is the terminal front-end for user registration: an interactive
// form to add or edit users, a table of everyone registered, and toast
// lines for operation feedback. It talks to the user-registration API
// server over HTTP and never shows unconfirmed state — the table only
// changes after the server accepts a mutation.
//
// RUNNING:
//
//	go run ./cmd/userform --config=config/local.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/aanand-mishra/user-registration/internal/app"
	"github.com/aanand-mishra/user-registration/internal/client"
	"github.com/aanand-mishra/user-registration/internal/config"
	"github.com/aanand-mishra/user-registration/internal/form"
	"github.com/aanand-mishra/user-registration/internal/ids"
	"github.com/aanand-mishra/user-registration/internal/messages"
	"github.com/aanand-mishra/user-registration/internal/notify"
	"github.com/aanand-mishra/user-registration/internal/store"
	"github.com/aanand-mishra/user-registration/internal/types"
	"github.com/aanand-mishra/user-registration/internal/validation"
)

const (
	actionAdd     = "Add a user"
	actionEdit    = "Edit a user"
	actionDelete  = "Delete a user"
	actionRefresh = "Refresh from server"
	actionQuit    = "Quit"
)

func main() {
	cfg := config.MustLoad()

	// Prompts own stdout, so logs go to stderr. In dev that is handy
	// for debugging; point it elsewhere in the shell if it gets noisy.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Toasts print as soon as they appear. The auto-dismiss timer still
	// runs (a screen-oriented front-end would clear the line); a printed
	// line simply scrolls away on its own.
	toaster := &notify.Toaster{OnChange: func(t *notify.Toast) {
		if t != nil {
			fmt.Printf("  [%s] %s\n", t.Kind, t.Text)
		}
	}}

	gateway := client.New(cfg.API.BaseURL, cfg.API.Timeout)
	users := store.NewUsers()
	orchestrator := app.New(users, gateway, toaster, log)
	session := form.NewSession(validation.UserValidator{}, &ids.Generator{})

	ctx := context.Background()

	fmt.Println("User Registration")
	orchestrator.Hydrate(ctx)

	for {
		printTable(users)

		var action string
		err := survey.AskOne(&survey.Select{
			Message: "What next?",
			Options: []string{actionAdd, actionEdit, actionDelete, actionRefresh, actionQuit},
		}, &action)
		if err != nil {
			quitOn(err)
			continue
		}

		switch action {
		case actionAdd:
			session.LoadBlank()
			runForm(ctx, session, orchestrator)
		case actionEdit:
			if user, ok := pickUser(users, "Which user do you want to edit?"); ok {
				session.LoadForEdit(user)
				runForm(ctx, session, orchestrator)
			}
		case actionDelete:
			if user, ok := pickUser(users, "Which user do you want to delete?"); ok {
				confirmed := false
				if err := survey.AskOne(&survey.Confirm{
					Message: messages.ConfirmDelete,
				}, &confirmed); err != nil {
					quitOn(err)
					continue
				}
				if confirmed {
					orchestrator.Delete(ctx, user)
				}
			}
		case actionRefresh:
			orchestrator.Hydrate(ctx)
		case actionQuit:
			return
		}
	}
}

// runForm walks the user through the form fields and submits. On
// validation failure the errors print next to a re-prompt cycle with
// the draft retained, exactly like inline form errors: the user fixes
// the fields and submits again, or abandons with Ctrl+C.
func runForm(ctx context.Context, session *form.Session, orchestrator *app.App) {
	for {
		draft := session.Draft()

		fields := []struct {
			name, prompt, current string
		}{
			{"name", "Full Name", draft.Name},
			{"email", "Email", draft.Email},
			{"phone", "Phone Number", draft.Phone},
		}
		for _, f := range fields {
			var value string
			if err := survey.AskOne(&survey.Input{
				Message: f.prompt,
				Default: f.current,
			}, &value); err != nil {
				quitOn(err)
				return
			}
			session.SetField(f.name, value)
		}

		gender := string(draft.Gender)
		if err := survey.AskOne(&survey.Select{
			Message: "Gender",
			Options: []string{
				string(types.GenderMale),
				string(types.GenderFemale),
				string(types.GenderOthers),
			},
			Default: gender,
		}, &gender); err != nil {
			quitOn(err)
			return
		}
		session.SetField("gender", gender)

		// Submit resets the session on success, so remember the mode now.
		isEdit := session.Mode() == form.Edit

		finalized, ok := session.Submit()
		if !ok {
			for _, field := range []string{"name", "email", "phone"} {
				if msg, found := session.Errors()[field]; found {
					fmt.Printf("  ! %s: %s\n", field, msg)
				}
			}
			continue
		}

		orchestrator.AddOrUpdate(ctx, finalized, isEdit)
		return
	}
}

// pickUser selects one stored user by name. Reports ok=false when the
// table is empty or the prompt is abandoned.
func pickUser(users *store.Users, prompt string) (types.User, bool) {
	all := users.GetAll()
	if len(all) == 0 {
		fmt.Println(messages.NoUsers)
		return types.User{}, false
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	options := make([]string, len(all))
	for i, u := range all {
		options[i] = fmt.Sprintf("%s <%s>", u.Name, u.Email)
	}

	var picked int
	err := survey.AskOne(&survey.Select{
		Message: prompt,
		Options: options,
	}, &picked)
	if err != nil {
		quitOn(err)
		return types.User{}, false
	}

	return all[picked], true
}

// printTable renders the collection sorted by id, which for timestamp
// ids is registration order.
func printTable(users *store.Users) {
	all := users.GetAll()
	if len(all) == 0 {
		fmt.Println(messages.NoUsers)
		return
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEMAIL\tPHONE\tGENDER")
	for _, u := range all {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.Name, u.Email, u.Phone, u.Gender)
	}
	w.Flush()
}

// quitOn exits cleanly when the user interrupts a prompt; any other
// prompt error is fatal (a broken terminal is not recoverable here).
func quitOn(err error) {
	if errors.Is(err, terminal.InterruptErr) {
		os.Exit(0)
	}
	fmt.Fprintln(os.Stderr, "prompt failed:", err)
	os.Exit(1)
}
