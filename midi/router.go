// Package midi maps hardware MIDI controllers onto audiogui parameters.
package midi

import (
	"errors"
	"fmt"
	"math"
	"sync"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"github.com/go-theft-auto/audiogui"
)

// ErrInvalidBinding is returned when a channel or controller number is out
// of the MIDI range.
var ErrInvalidBinding = errors.New("invalid midi binding")

const (
	maxChannel    = 15
	maxController = 127
	maxPitchBend  = 16383
)

// Target is a parameter position decoded from a MIDI message.
type Target[ID comparable] struct {
	ID     ID
	Normal audiogui.Normal
}

type ccKey struct {
	channel, controller uint8
}

// Router maps control change and pitch bend messages to parameter IDs.
// It is safe for concurrent use: MIDI drivers call back on their own
// goroutine while the UI binds parameters.
type Router[ID comparable] struct {
	mu   sync.RWMutex
	cc   map[ccKey]ID
	bend map[uint8]ID
	back map[ID]ccKey
}

// NewRouter creates a router with no bindings.
func NewRouter[ID comparable]() *Router[ID] {
	return &Router[ID]{
		cc:   make(map[ccKey]ID),
		bend: make(map[uint8]ID),
		back: make(map[ID]ccKey),
	}
}

// Bind routes control change controller on channel to id. A later binding
// of the same controller replaces the earlier one.
func (r *Router[ID]) Bind(channel, controller uint8, id ID) error {
	if channel > maxChannel || controller > maxController {
		return fmt.Errorf("%w: channel %d controller %d", ErrInvalidBinding, channel, controller)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := ccKey{channel: channel, controller: controller}
	if old, ok := r.cc[key]; ok {
		delete(r.back, old)
	}
	r.cc[key] = id
	r.back[id] = key
	return nil
}

// BindPitchBend routes the pitch wheel on channel to id.
func (r *Router[ID]) BindPitchBend(channel uint8, id ID) error {
	if channel > maxChannel {
		return fmt.Errorf("%w: channel %d", ErrInvalidBinding, channel)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bend[channel] = id
	return nil
}

// Route decodes msg. It reports false for messages with no binding.
func (r *Router[ID]) Route(msg gomidi.Message) (Target[ID], bool) {
	var channel, controller, value uint8
	var relative int16
	var absolute uint16

	r.mu.RLock()
	defer r.mu.RUnlock()

	switch {
	case msg.GetControlChange(&channel, &controller, &value):
		id, ok := r.cc[ccKey{channel: channel, controller: controller}]
		if !ok {
			return Target[ID]{}, false
		}
		return Target[ID]{ID: id, Normal: audiogui.NewNormal(float32(value) / maxController)}, true
	case msg.GetPitchBend(&channel, &relative, &absolute):
		id, ok := r.bend[channel]
		if !ok {
			return Target[ID]{}, false
		}
		return Target[ID]{ID: id, Normal: audiogui.NewNormal(float32(absolute) / maxPitchBend)}, true
	}
	return Target[ID]{}, false
}

// Feedback builds the control change that moves a motorized fader or LED
// ring on channel/controller to n.
func Feedback(channel, controller uint8, n audiogui.Normal) gomidi.Message {
	return gomidi.ControlChange(channel, controller, ccValue(n))
}

// FeedbackFor builds feedback for the controller bound to id.
func (r *Router[ID]) FeedbackFor(id ID, n audiogui.Normal) (gomidi.Message, bool) {
	r.mu.RLock()
	key, ok := r.back[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return Feedback(key.channel, key.controller, n), true
}

func ccValue(n audiogui.Normal) uint8 {
	return uint8(math.Round(float64(n.Value()) * maxController))
}

// Listen starts routing messages from in and calls fn for every bound one.
// fn runs on the driver's goroutine; hand the target to the UI thread before
// touching any widget. Call the returned stop function to stop listening.
func (r *Router[ID]) Listen(in drivers.In, fn func(Target[ID])) (stop func(), err error) {
	stop, err = gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		if t, ok := r.Route(msg); ok {
			fn(t)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", in, err)
	}
	return stop, nil
}
