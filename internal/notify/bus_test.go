package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_FanOut(t *testing.T) {
	b := NewBus(4)
	a, cancelA := b.Subscribe()
	defer cancelA()
	c, cancelC := b.Subscribe()
	defer cancelC()

	b.Notify(context.Background(), Alert{Level: LevelWarning, Title: "Health Alert"})

	for _, ch := range []<-chan Event{a, c} {
		evt := <-ch
		require.NotNil(t, evt.Alert)
		assert.Nil(t, evt.Navigation)
		assert.Equal(t, "Health Alert", evt.Alert.Title)
	}
}

func TestBus_NavigateCarriesFrom(t *testing.T) {
	b := NewBus(1)
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Navigate(context.Background(), Navigation{To: DestinationLogin, From: "patients"})

	evt := <-ch
	require.NotNil(t, evt.Navigation)
	assert.Equal(t, Navigation{To: DestinationLogin, From: "patients"}, *evt.Navigation)
}

func TestBus_PublishDoesNotBlockWhenFull(t *testing.T) {
	b := NewBus(1)
	_, cancel := b.Subscribe()
	defer cancel()

	assert.Equal(t, 1, b.Publish(Event{Alert: &Alert{Title: "one"}}))
	assert.Equal(t, 0, b.Publish(Event{Alert: &Alert{Title: "two"}}))
}

func TestBus_CancelClosesAndUnsubscribes(t *testing.T) {
	b := NewBus(1)
	ch, cancel := b.Subscribe()

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, b.Publish(Event{Alert: &Alert{}}))
}

func TestDiscard_Implements(t *testing.T) {
	var n Notifier = Discard{}
	var g Navigator = Discard{}
	n.Notify(context.Background(), Alert{})
	g.Navigate(context.Background(), Navigation{})
}
