// observability_test.go: typed notification tests
//

package transclude

import "testing"

func TestObserverFuncAdaptsPlainFunction(t *testing.T) {
	var got Event
	obs := ObserverFunc(func(e Event) { got = e })

	obs.Notify(Event{Kind: EventFileOpened, Path: "/base/a.md", Depth: 2})

	if got.Kind != EventFileOpened || got.Path != "/base/a.md" || got.Depth != 2 {
		t.Errorf("Notify delivered unexpected event: %+v", got)
	}
}

func TestNotifyIsNilSafe(t *testing.T) {
	notify(nil, Event{Kind: EventProcessingComplete})
}

func TestNotifyDeliversToObserver(t *testing.T) {
	var calls []EventKind
	obs := ObserverFunc(func(e Event) { calls = append(calls, e.Kind) })

	notify(obs, Event{Kind: EventCircularReference})
	notify(obs, Event{Kind: EventDepthExceeded})

	if len(calls) != 2 || calls[0] != EventCircularReference || calls[1] != EventDepthExceeded {
		t.Errorf("unexpected delivery order: %v", calls)
	}
}
