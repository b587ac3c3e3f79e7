package database_test

import (
	"context"
	"testing"
	"time"

	"foodgram/database"
	"foodgram/internal/testutil"
)

func TestMonitorDBConnectionsDoesNotBlock(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		database.MonitorDBConnections(ctx, db, 4)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("MonitorDBConnections blocked the caller")
	}
}
