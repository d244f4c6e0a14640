package server

import (
	"testing"
)

func TestEventHubBroadcastsMutations(t *testing.T) {
	srv := newTestServer(t)

	ch := srv.events.subscribe()
	defer srv.events.unsubscribe(ch)

	addItem(t, srv, "Milk", "Dairy")

	select {
	case stats := <-ch:
		if stats.Total != 1 || stats.Completed != 0 {
			t.Fatalf("unexpected stats in event: %+v", stats)
		}
	default:
		t.Fatal("no event after a mutation")
	}
}

func TestEventHubDropsEventsForSlowClients(t *testing.T) {
	srv := newTestServer(t)

	ch := srv.events.subscribe()
	defer srv.events.unsubscribe(ch)

	// Overflow the client buffer; mutations must never block on it.
	for i := 0; i < 20; i++ {
		addItem(t, srv, "Milk", "Dairy")
	}
	if stats := getStats(t, srv); stats.Total != 20 {
		t.Fatalf("mutations blocked by a slow client: %+v", stats)
	}
}

func TestEventHubUnsubscribeStopsDelivery(t *testing.T) {
	srv := newTestServer(t)

	ch := srv.events.subscribe()
	srv.events.unsubscribe(ch)

	// Must not panic on a send to the departed client.
	addItem(t, srv, "Milk", "Dairy")
}
