/*
Package audiogui provides parameter-control widgets for audio plugin user
interfaces: horizontal and vertical sliders, knobs and XY pads.

# Overview

Every widget stores its position as a Normal, a float32 clamped into [0, 1].
A Range converts between a Normal and the real value the audio engine wants:

	FloatRange   linear float32 between min and max
	IntRange     integer steps, with SnapNormal for stepped widgets
	LogDBRange   decibels with a configurable position for 0 dB
	FreqRange    frequencies spaced by octaves (20 Hz - 20480 Hz by default)

A Param couples a Normal with the host's identifier for the parameter. The ID
type is chosen by the host and handed back unchanged in every Change.

# Quick Start

	type ParamID int

	const (
	    ParamGain ParamID = iota
	    ParamCutoff
	)

	db := audiogui.DefaultLogDBRange()
	freq := audiogui.DefaultFreqRange()

	gain := audiogui.NewKnob(audiogui.CreateDefaultParam(db, ParamGain))
	cutoff := audiogui.NewHSlider(audiogui.CreateParam(freq, ParamCutoff, float32(440), float32(1000)))

	surface := audiogui.NewSurface[ParamID](renderer)
	surface.Place(gain, audiogui.Rect{X: 10, Y: 10, W: 64, H: 64})
	surface.Place(cutoff, audiogui.Rect{X: 90, Y: 30, W: 240, H: 24})

	// Event loop
	for ev := range events {
	    for _, ch := range surface.Dispatch(ev) {
	        switch ch.ID {
	        case ParamGain:
	            engine.SetGain(db.ToValue(ch.Normal))
	        case ParamCutoff:
	            engine.SetCutoff(freq.ToValue(ch.Normal))
	        }
	    }
	    surface.Render()
	}

# Dragging

Widgets do not jump to the pointer. A drag moves the value by the pointer
travel divided by the widget length, times a scalar (0.98 by default). Holding
the modifier keys (Ctrl by default) switches to a fine scalar (0.02).

Overshooting past either end is remembered: after dragging 30% beyond the top,
the pointer has to come back 30% before the value starts to fall. Releasing
the button forgets the overshoot.

A double click resets the parameter to its default and reports one Change.

Hosts must forward a button release when the pointer is lost, for example when
the window loses focus. The backends in backend/opengl and backend/tui do this.

# Shortcuts

	Left drag          Change the value
	Ctrl + Left drag   Fine adjustment
	Double click       Reset to default

# Logging

Drag gestures are logged at Debug level through log/slog. Call SetVerbose(true)
to see them, or SetLogger to route them into the host's handler.
*/
package audiogui
