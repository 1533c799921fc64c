package sheet

import (
	"math"
	"time"
)

// DragState is the per-gesture record kept between press and release.
// Negative translations move the sheet up.
type DragState struct {
	TranslationY             float64
	PredictedEndTranslationY float64
}

// VerticalDirection is the signed distance the gesture would still travel
// after release. Positive values mean a downward flick.
func (d DragState) VerticalDirection() float64 {
	return d.PredictedEndTranslationY - d.TranslationY
}

// Translator turns raw drag translations into sheet offsets and release
// decisions.
type Translator struct {
	Threshold       float64
	Damping         float64
	DismissVelocity float64
}

// NewTranslator builds a Translator from metrics.
func NewTranslator(m Metrics) Translator {
	return Translator{
		Threshold:       m.CollapseThreshold,
		Damping:         m.Damping,
		DismissVelocity: m.DismissVelocity,
	}
}

// Offset maps a translation to the live drag offset.
//
// Translations above the threshold track 1:1. Past it the excess is scaled
// by Damping, and the translation stops counting once the content top would
// be pulled above the viewport bottom plus the handle section.
func (t Translator) Offset(translation, contentHeight, screenHeight, handleHeight float64) float64 {
	if translation > t.Threshold {
		return translation
	}
	limit := math.Min(contentHeight-screenHeight-handleHeight, t.Threshold)
	if translation < limit {
		translation = limit
	}
	return t.Threshold + (translation-t.Threshold)*t.Damping
}

// Decide picks the state a released gesture commits to.
func (t Translator) Decide(state State, d DragState) State {
	dir := d.VerticalDirection()
	switch {
	case state == Presented && dir < 0:
		return Presented
	case state == Presented && dir > t.DismissVelocity:
		return Dismissed
	default:
		return Presented
	}
}

const (
	velocityWindow = 100 * time.Millisecond
	// decelerationRate is the per-millisecond velocity retention used to
	// project where a flick would come to rest.
	decelerationRate = 0.998
)

type sample struct {
	at time.Time
	y  float64
}

// VelocityTracker estimates pointer velocity from recent samples.
type VelocityTracker struct {
	now     func() time.Time
	samples []sample
}

// NewVelocityTracker returns a tracker reading time from now, or time.Now
// when now is nil.
func NewVelocityTracker(now func() time.Time) *VelocityTracker {
	if now == nil {
		now = time.Now
	}
	return &VelocityTracker{now: now}
}

// Reset forgets all samples.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}

// Add records the pointer at y.
func (v *VelocityTracker) Add(y float64) {
	at := v.now()
	v.samples = append(v.samples, sample{at: at, y: y})
	cutoff := at.Add(-velocityWindow)
	drop := 0
	for drop < len(v.samples)-2 && v.samples[drop].at.Before(cutoff) {
		drop++
	}
	v.samples = v.samples[drop:]
}

// Velocity returns units per millisecond over the sampling window.
func (v *VelocityTracker) Velocity() float64 {
	if len(v.samples) < 2 {
		return 0
	}
	first, last := v.samples[0], v.samples[len(v.samples)-1]
	ms := float64(last.at.Sub(first.at)) / float64(time.Millisecond)
	if ms <= 0 {
		return 0
	}
	return (last.y - first.y) / ms
}

// Project returns where a pointer at y moving at the tracked velocity would
// come to rest.
func (v *VelocityTracker) Project(y float64) float64 {
	return y + v.Velocity()*decelerationRate/(1-decelerationRate)
}
