// Package main provides the BookClub command-line client.
//
// Usage:
//
//	bookclub [flags] <command> [args]
//
// Commands:
//
//	register <username> <password>   create an account and sign in
//	login <username> <password>      sign in
//	logout                           sign out and clear cached state
//	whoami                           show the current session
//	users                            list all accounts
//	shelves                          show your shelves
//	shelve <book-id> <status>        file a book (want|reading|read|dnf)
//	move <shelf-id> <status>         refile a shelf entry
//	unshelve <shelf-id>              remove a shelf entry
//	notifications                    list notifications, unread first
//	read <notification-id>           mark a notification read
//	tags                             list your tags and label usage
//	tag <book-id> <label>            apply a label to a book
//	untag <tag-id>                   remove a tag
//	search <query>                   search the book catalog
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/bookclubapp/bookclub-client/internal/books"
	"github.com/bookclubapp/bookclub-client/internal/di"
	"github.com/bookclubapp/bookclub-client/internal/di/providers"
	"github.com/bookclubapp/bookclub-client/internal/domain"
	"github.com/bookclubapp/bookclub-client/internal/errors"
	"github.com/bookclubapp/bookclub-client/internal/logger"
	"github.com/bookclubapp/bookclub-client/internal/state"
)

func main() {
	injector := di.NewContainer()

	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap client: %v\n", err)
		os.Exit(1)
	}
	log := do.MustInvoke[*logger.Logger](injector)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Pick up a previous login; a missing session is not an error here.
	sess := do.MustInvoke[*state.Session](injector)
	if err := sess.Restore(); err != nil && !errors.Is(err, errors.ErrNoSession) {
		log.Warn("could not restore session", "error", err)
	}

	err := run(ctx, injector)

	if shutdownErr := injector.Shutdown(); shutdownErr != nil {
		log.Error("Shutdown error", "error", shutdownErr)
	}
	if storeHandle, invokeErr := do.Invoke[*providers.StoreHandle](injector); invokeErr == nil {
		if closeErr := storeHandle.Shutdown(); closeErr != nil {
			log.Error("Failed to close local store", "error", closeErr)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, injector *do.RootScope) error {
	// Config loading already ran flag.Parse; what's left is the command.
	args := flag.Args()
	if len(args) == 0 {
		args = []string{"whoami"}
	}
	cmd, rest := args[0], args[1:]

	sess := do.MustInvoke[*state.Session](injector)

	switch cmd {
	case "register", "login":
		if len(rest) != 2 {
			return fmt.Errorf("usage: bookclub %s <username> <password>", cmd)
		}
		var err error
		if cmd == "register" {
			err = sess.Register(ctx, rest[0], rest[1])
		} else {
			err = sess.Authenticate(ctx, rest[0], rest[1])
		}
		if err != nil {
			return err
		}
		fmt.Printf("Signed in as %s (%s)\n", sess.Current().Username, sess.UserID())
		return nil

	case "logout":
		if err := sess.Logout(); err != nil {
			return err
		}
		di.ResetState(injector)
		fmt.Println("Signed out")
		return nil

	case "whoami":
		cur := sess.Current()
		if !cur.Active() {
			fmt.Println("Not signed in")
			return nil
		}
		fmt.Printf("%s (%s)\n", cur.Username, cur.UserID)
		return nil

	case "users":
		users, err := sess.Users(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			fmt.Printf("%s  %s\n", u.ID, u.Username)
		}
		return nil

	case "shelves":
		return runShelves(ctx, injector, sess)

	case "shelve":
		if len(rest) != 2 {
			return fmt.Errorf("usage: bookclub shelve <book-id> <status>")
		}
		status, err := parseStatus(rest[1])
		if err != nil {
			return err
		}
		if err := requireLogin(sess); err != nil {
			return err
		}
		shelves := do.MustInvoke[*state.Shelves](injector)
		id, err := shelves.Add(ctx, sess.UserID(), status, rest[0])
		if err != nil {
			return err
		}
		fmt.Printf("Shelved %s under %q (entry %s)\n", rest[0], status.Label(), id)
		return nil

	case "move":
		if len(rest) != 2 {
			return fmt.Errorf("usage: bookclub move <shelf-id> <status>")
		}
		status, err := parseStatus(rest[1])
		if err != nil {
			return err
		}
		shelves := do.MustInvoke[*state.Shelves](injector)
		if err := shelves.ChangeStatus(ctx, rest[0], status); err != nil {
			return err
		}
		fmt.Printf("Moved %s to %q\n", rest[0], status.Label())
		return nil

	case "unshelve":
		if len(rest) != 1 {
			return fmt.Errorf("usage: bookclub unshelve <shelf-id>")
		}
		shelves := do.MustInvoke[*state.Shelves](injector)
		if err := shelves.Remove(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", rest[0])
		return nil

	case "notifications":
		if err := requireLogin(sess); err != nil {
			return err
		}
		notifs := do.MustInvoke[*state.Notifications](injector)
		if err := notifs.LoadAll(ctx, sess.UserID()); err != nil {
			return err
		}
		for _, n := range notifs.Sorted() {
			marker := " "
			if !n.Read {
				marker = "*"
			}
			fmt.Printf("%s %s  %s\n", marker, n.ID, n.Message)
		}
		fmt.Printf("%d unread\n", notifs.UnreadCount())
		return nil

	case "read":
		if len(rest) != 1 {
			return fmt.Errorf("usage: bookclub read <notification-id>")
		}
		notifs := do.MustInvoke[*state.Notifications](injector)
		return notifs.MarkRead(ctx, rest[0])

	case "tags":
		if err := requireLogin(sess); err != nil {
			return err
		}
		tags := do.MustInvoke[*state.Tags](injector)
		if err := tags.LoadUser(ctx, sess.UserID()); err != nil {
			return err
		}
		for _, lc := range tags.Labels() {
			fmt.Printf("%4d  %s\n", lc.Count, lc.Label)
		}
		for _, tb := range tags.TaggedBooks() {
			labels := make([]string, 0, len(tb.Tags))
			for _, tag := range tb.Tags {
				labels = append(labels, tag.Label)
			}
			fmt.Printf("%s: %s\n", tb.BookID, strings.Join(labels, ", "))
		}
		return nil

	case "tag":
		if len(rest) != 2 {
			return fmt.Errorf("usage: bookclub tag <book-id> <label>")
		}
		if err := requireLogin(sess); err != nil {
			return err
		}
		tags := do.MustInvoke[*state.Tags](injector)
		tag, err := tags.Add(ctx, sess.UserID(), rest[1], rest[0])
		if err != nil {
			return err
		}
		fmt.Printf("Tagged %s with %q (tag %s)\n", tag.Book, tag.Label, tag.ID)
		return nil

	case "untag":
		if len(rest) != 1 {
			return fmt.Errorf("usage: bookclub untag <tag-id>")
		}
		tags := do.MustInvoke[*state.Tags](injector)
		return tags.Remove(ctx, rest[0])

	case "search":
		if len(rest) == 0 {
			return fmt.Errorf("usage: bookclub search <query>")
		}
		catalog := do.MustInvoke[*books.Client](injector)
		result, err := catalog.Search(ctx, books.SearchParams{Query: strings.Join(rest, " ")})
		if err != nil {
			return err
		}
		for _, v := range result.Volumes {
			fmt.Printf("%s  %s — %s\n", v.ID, v.Title, strings.Join(v.Authors, ", "))
		}
		fmt.Printf("%d of %d results\n", len(result.Volumes), result.TotalItems)
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runShelves(ctx context.Context, injector *do.RootScope, sess *state.Session) error {
	if err := requireLogin(sess); err != nil {
		return err
	}
	shelves := do.MustInvoke[*state.Shelves](injector)
	if err := shelves.LoadUser(ctx, sess.UserID()); err != nil {
		return err
	}
	for status, ids := range shelves.BooksByStatus() {
		fmt.Printf("%s (%d):\n", status.Label(), len(ids))
		for _, id := range ids {
			fmt.Printf("  %s\n", id)
		}
	}
	fmt.Printf("%d shelved in total\n", shelves.TotalShelved())
	return nil
}

func requireLogin(sess *state.Session) error {
	if !sess.Authenticated() {
		return errors.Unauthorized("sign in first with: bookclub login <username> <password>")
	}
	return nil
}

func parseStatus(s string) (domain.ShelfStatus, error) {
	switch strings.ToLower(s) {
	case "want", "want-to-read", "wtr":
		return domain.StatusWantToRead, nil
	case "reading", "currently-reading":
		return domain.StatusCurrentlyReading, nil
	case "read", "finished":
		return domain.StatusRead, nil
	case "dnf", "did-not-finish":
		return domain.StatusDidNotFinish, nil
	default:
		return 0, fmt.Errorf("unknown status %q (want|reading|read|dnf)", s)
	}
}
