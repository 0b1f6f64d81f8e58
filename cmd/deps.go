/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianoliveira/pushtray/internal/config"
	"github.com/cristianoliveira/pushtray/internal/hooks"
	"github.com/cristianoliveira/pushtray/internal/inbox"
	"github.com/cristianoliveira/pushtray/internal/kv"
)

// inboxService is the inbox surface the commands need.
type inboxService interface {
	Add(ctx context.Context, n inbox.Notification) (bool, error)
	MarkRead(ctx context.Context, id string) (bool, error)
	MarkAllRead(ctx context.Context) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
	Clear(ctx context.Context) error
	Notifications() []inbox.Notification
	Get(id string) (inbox.Notification, bool)
	UnreadCount() int
	Len() int
}

// inboxOpener opens an initialized inbox service backed by the configured
// storage. The returned cleanup closes the backing store.
type inboxOpener func(ctx context.Context) (inboxService, func(), error)

// defaultOpener builds the inbox from the global configuration.
func defaultOpener(ctx context.Context) (inboxService, func(), error) {
	store, err := kv.NewFromConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	box := inbox.New(store, inbox.Options{
		Key:       config.Get("storage_key", inbox.DefaultKey),
		MaxStored: config.GetInt("max_notifications", inbox.DefaultMaxStored),
	})
	if err := box.Initialize(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	cleanup := func() {
		_ = store.Close()
	}
	return box, cleanup, nil
}

// notificationEnv builds the NOTIFICATION_* environment variables passed to
// hook scripts.
func notificationEnv(n inbox.Notification) []string {
	return []string{
		"NOTIFICATION_ID=" + n.ID,
		"NOTIFICATION_TITLE=" + n.Title,
		"NOTIFICATION_BODY=" + n.Body,
		"NOTIFICATION_TIMESTAMP=" + n.ReceivedAt.UTC().Format(time.RFC3339Nano),
		fmt.Sprintf("NOTIFICATION_READ=%t", n.Read),
	}
}

// runHooks fires hook scripts for an event. Hook failures never fail the
// command unless the failure mode is abort.
func runHooks(event string, envVars ...string) error {
	return hooks.Run(event, envVars...)
}
