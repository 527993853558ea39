package stagecraft

import (
	"errors"
	"time"
)

// UpdateOutcome is the result-value replacement for the exception-based
// NextScene/StopApplication control flow of the teacher's original
// semantics (SPEC_FULL.md Design Note §9): instead of a Scene or the
// Player raising to signal "move on", Run's per-frame callback returns
// one of these.
type UpdateOutcome int

const (
	// OutcomeContinue keeps running the current Scene.
	OutcomeContinue UpdateOutcome = iota
	// OutcomeNextScene advances to the next Scene in the Player's list
	// (wrapping to the first if already at the last).
	OutcomeNextScene
	// OutcomeStop ends Run cleanly.
	OutcomeStop
)

// ErrNoScenes is returned by Run when the Player has no scenes configured.
var ErrNoScenes = errors.New("stagecraft: player has no scenes")

// FrameCallback runs once per drawn frame, after the active Scene has
// been updated and the screen refreshed, and can force an advance
// (OutcomeNextScene) or a stop (OutcomeStop). Returning OutcomeContinue
// defers to the Scene's own isComplete() result, so the callback cannot
// hold a completed Scene open.
type FrameCallback func(p *Player, frameNo int) UpdateOutcome

// Player drives a fixed-rate Scene loop against a Screen (spec.md §4.6,
// C8). Grounded on germtb-goli/app.go's tick-interval render loop,
// generalised from single-tree re-render to multi-Scene playback.
type Player struct {
	Screen     *Screen
	Scenes     []*Scene
	FPS        int
	OnFrame    FrameCallback
	sceneIndex int
}

// NewPlayer creates a Player over screen, cycling through scenes at fps
// frames per second (spec.md §4.6).
func NewPlayer(screen *Screen, scenes []*Scene, fps int) *Player {
	if fps <= 0 {
		fps = 30
	}
	return &Player{Screen: screen, Scenes: scenes, FPS: fps}
}

// CurrentScene returns the Scene currently playing.
func (p *Player) CurrentScene() *Scene {
	if len(p.Scenes) == 0 {
		return nil
	}
	return p.Scenes[p.sceneIndex]
}

// Run executes the fixed-rate loop until OnFrame returns OutcomeStop or
// the driver reports a resize, in which case Run resizes the Screen and
// returns a ResizeError (callers re-invoke Run to resume). A Scene never
// stops Run; it only completes, which advances to the next Scene.
//
// Algorithm (spec.md §4.6):
//  1. enter the current scene (reset effects, clear if requested)
//  2. drain pending input events, offering each to the scene
//  3. on a resize, resize the Screen and return a ResizeError
//  4. update the scene for the current frame
//  5. refresh the screen
//  6. decide whether to hold, advance, or stop
//  7. sleep out the remainder of the frame interval, then repeat
func (p *Player) Run() error {
	if len(p.Scenes) == 0 {
		return ErrNoScenes
	}
	interval := time.Second / time.Duration(p.FPS)
	scene := p.Scenes[p.sceneIndex]
	scene.Reset(p.Screen.Canvas, nil)
	frameNo := 0

	for {
		start := time.Now()

		for {
			ev := p.Screen.GetEvent()
			if ev == nil {
				break
			}
			if rest := scene.ProcessEvent(ev); rest != nil {
				if _, ok := rest.(KeyboardEvent); ok {
					// Unconsumed keyboard events are available for a
					// future global keymap; currently dropped.
				}
			}
		}

		if p.Screen.HasResized() {
			p.Screen.Resize()
			return &ResizeError{Scene: scene}
		}

		scene.update(p.Screen.Canvas)
		if err := p.Screen.Refresh(); err != nil {
			return err
		}

		outcome := OutcomeContinue
		if p.OnFrame != nil {
			outcome = p.OnFrame(p, frameNo)
		}
		if outcome == OutcomeContinue && scene.isComplete() {
			outcome = OutcomeNextScene
		}

		switch outcome {
		case OutcomeStop:
			return nil
		case OutcomeNextScene:
			p.sceneIndex = (p.sceneIndex + 1) % len(p.Scenes)
			scene = p.Scenes[p.sceneIndex]
			scene.Reset(p.Screen.Canvas, scene)
			frameNo = 0
		default:
			frameNo++
		}

		if elapsed := time.Since(start); elapsed < interval {
			time.Sleep(interval - elapsed)
		}
	}
}
