package notify_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hanafi-dev/sentra-portal-api/internal/notify"
)

func newTestNotifier(ttl time.Duration) *notify.Notifier {
	return notify.New(notify.Config{TTL: ttl}, zerolog.Nop())
}

func TestPushQueuesOldestFirst(t *testing.T) {
	notifier := newTestNotifier(time.Minute)

	first := notifier.Push("Welcome back, Admin!", notify.TypeSuccess)
	second := notifier.Push("Timetable saved.", notify.TypeInfo)

	active := notifier.Active()
	require.Len(t, active, 2)
	require.Equal(t, first, active[0].ID)
	require.Equal(t, second, active[1].ID)
	require.Equal(t, notify.TypeSuccess, active[0].Type)
}

func TestPushDoesNotDeduplicate(t *testing.T) {
	notifier := newTestNotifier(time.Minute)

	notifier.Push("Settings saved.", notify.TypeSuccess)
	notifier.Push("Settings saved.", notify.TypeSuccess)

	require.Len(t, notifier.Active(), 2)
}

func TestPushStripsMarkup(t *testing.T) {
	notifier := newTestNotifier(time.Minute)

	notifier.Push(`<script>alert("x")</script>Resource uploaded.`, notify.TypeSuccess)

	active := notifier.Active()
	require.Len(t, active, 1)
	require.Equal(t, "Resource uploaded.", active[0].Message)
}

func TestNotificationsExpireAfterTTL(t *testing.T) {
	notifier := newTestNotifier(30 * time.Millisecond)

	notifier.Push("Alert marked as resolved.", notify.TypeInfo)
	require.Len(t, notifier.Active(), 1)

	require.Eventually(t, func() bool {
		return len(notifier.Active()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestDismissIsIdempotent(t *testing.T) {
	notifier := newTestNotifier(time.Minute)

	id := notifier.Push("Account locked.", notify.TypeInfo)
	keep := notifier.Push("Welcome back, Asha!", notify.TypeSuccess)

	notifier.Dismiss(id)
	notifier.Dismiss(id)
	notifier.Dismiss("never-existed")

	active := notifier.Active()
	require.Len(t, active, 1)
	require.Equal(t, keep, active[0].ID)
}

func TestSubscribeStreamsPushes(t *testing.T) {
	notifier := newTestNotifier(time.Minute)

	stream, cancel := notifier.Subscribe()
	defer cancel()

	notifier.Push("Announcement published.", notify.TypeSuccess)

	select {
	case notification := <-stream:
		require.Equal(t, "Announcement published.", notification.Message)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

func TestSubscribeCancelStopsDelivery(t *testing.T) {
	notifier := newTestNotifier(time.Minute)

	stream, cancel := notifier.Subscribe()
	cancel()
	cancel()

	notifier.Push("Timetable saved.", notify.TypeSuccess)

	_, open := <-stream
	require.False(t, open)
}
