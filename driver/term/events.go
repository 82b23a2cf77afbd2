// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import "github.com/gdamore/tcell/v2"

// EventKind classifies terminal input.
type EventKind int

const (
	// EventKey is a key press that is not a quit request.
	EventKey EventKind = iota

	// EventResize reports a new terminal size; call Driver.Resize.
	EventResize

	// EventQuit is Ctrl+C, Escape or q.
	EventQuit
)

// Event is terminal input translated for the server loop.
type Event struct {
	Kind EventKind

	// Key and Rune describe EventKey input.
	Key  tcell.Key
	Rune rune

	// Width and Height are the new pixel dimensions for EventResize.
	Width, Height int
}

// Events starts reading terminal input and returns the translated
// events. The channel is closed when the driver is closed.
func (d *Driver) Events() <-chan Event {
	d.eventsOnce.Do(func() {
		raw := make(chan tcell.Event, 16)
		d.events = make(chan Event, 16)
		go d.screen.ChannelEvents(raw, d.quit)
		go d.translate(raw)
	})
	return d.events
}

func (d *Driver) translate(raw <-chan tcell.Event) {
	defer close(d.events)
	for ev := range raw {
		e, ok := translate(ev)
		if !ok {
			continue
		}
		select {
		case d.events <- e:
		case <-d.quit:
			return
		}
	}
}

func translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return Event{Kind: EventResize, Width: cols, Height: rows * 2}, true
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyEscape:
			return Event{Kind: EventQuit}, true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return Event{Kind: EventQuit}, true
		}
		return Event{Kind: EventKey, Key: ev.Key(), Rune: ev.Rune()}, true
	}
	return Event{}, false
}
