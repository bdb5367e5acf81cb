package game

import (
	"time"

	"github.com/gammazero/deque"
	"github.com/they4kman/hexxagon/hex"
)

type AnnotationType int

const (
	AnnotateSelected AnnotationType = iota
	AnnotateMoveOption
)

// Annotation highlights a field. It stays fully visible while it belongs to
// the latest frame, then fades out once retired.
type Annotation struct {
	Coordinate hex.Coordinate
	Type       AnnotationType

	frame   int
	retired time.Time
}

// Annotations holds highlights oldest first
type Annotations struct {
	queue    deque.Deque
	frame    int
	duration time.Duration
}

func NewAnnotations(duration time.Duration) *Annotations {
	return &Annotations{duration: duration}
}

func (annotations *Annotations) Len() int {
	return annotations.queue.Len()
}

func (annotations *Annotations) At(i int) *Annotation {
	return annotations.queue.At(i).(*Annotation)
}

// NextFrame retires every current annotation as of now
func (annotations *Annotations) NextFrame(now time.Time) {
	for i := 0; i < annotations.queue.Len(); i++ {
		annotation := annotations.At(i)
		if annotation.frame == annotations.frame {
			annotation.retired = now
		}
	}
	annotations.frame++
}

func (annotations *Annotations) Push(coordinate hex.Coordinate, annotationType AnnotationType) {
	annotations.queue.PushBack(&Annotation{
		Coordinate: coordinate,
		Type:       annotationType,
		frame:      annotations.frame,
	})
}

// Annotate starts a new frame holding the selection and its move options
func (annotations *Annotations) Annotate(selection *Selection, now time.Time) {
	annotations.NextFrame(now)
	if selected, ok := selection.Selected(); ok {
		annotations.Push(selected, AnnotateSelected)
		for _, option := range selection.Options() {
			annotations.Push(option, AnnotateMoveOption)
		}
	}
}

// Expire drops retired annotations which have fully faded by now
func (annotations *Annotations) Expire(now time.Time) {
	for annotations.queue.Len() > 0 {
		front := annotations.queue.Front().(*Annotation)
		if front.frame == annotations.frame || now.Sub(front.retired) <= annotations.duration {
			return
		}
		annotations.queue.PopFront()
	}
}

// Alpha returns how visible the annotation is, relative to its base alpha
func (annotations *Annotations) Alpha(annotation *Annotation, now time.Time) float64 {
	if annotation.frame == annotations.frame {
		return 1
	}

	progress := 1 - float64(now.Sub(annotation.retired))/float64(annotations.duration)
	if progress <= 0 {
		return 0
	}
	return InOutCubic(progress)
}

func InOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	} else {
		t -= 2
		return 0.5 * (t*t*t + 2)
	}
}
