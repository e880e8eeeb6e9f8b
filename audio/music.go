package audio

import (
	"log"

	"github.com/lixenwraith/skyfall/constant"
	"github.com/lixenwraith/skyfall/core"
)

// SetPhase requests the music for a game phase. Re-requesting the phase
// whose track is already playing is a no-op: no envelope restart, no
// reload. Otherwise the audible session fades out over the crossfade
// duration and the target track fades in once its clips are available.
//
// Transitions race under rapid phase churn; the generation counter makes
// them last-writer-wins. A load finishing for a superseded transition is
// discarded without ever becoming audible.
func (e *Engine) SetPhase(phase core.GamePhase, levelHint int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setPhaseLocked(phase, levelHint)
}

func (e *Engine) setPhaseLocked(phase core.GamePhase, levelHint int) {
	e.sweepFadedLocked()

	if e.state != stateActive {
		// Remember the request; Activate replays it once the device is
		// permitted to produce sound
		e.pending = &pendingPhase{phase: phase, levelHint: levelHint}
		return
	}
	e.resumeIfSuspendedLocked()

	want, ok := e.tracks.Resolve(phase, levelHint)
	if ok && e.current != nil && e.currentTrack == want {
		return
	}

	gen := e.generation.Add(1)
	e.fadeOutCurrentLocked()

	if !ok {
		// Silence is the target; done once the fade completes
		return
	}

	e.stats.TransitionsStarted++

	if pair, cached := e.cache.get(want); cached {
		e.startSessionLocked(want, pair)
		e.preloadLookaheadLocked(phase, levelHint)
		return
	}

	def, defined := e.tracks.Definition(want)
	if !defined {
		log.Printf("audio: no clip definition for track %s", want)
		return
	}

	p := e.cache.ensureLoad(want, e.fetchFunc(def))
	go e.awaitLoad(gen, phase, levelHint, want, p)
}

// awaitLoad finishes a transition once its load settles
// Runs off the control path; all decisions re-acquire the engine lock and
// re-read the generation counter at that moment
func (e *Engine) awaitLoad(gen uint64, phase core.GamePhase, levelHint int, id core.TrackID, p *pendingLoad) {
	<-p.done

	e.mu.Lock()
	defer e.mu.Unlock()

	if p.err != nil {
		e.stats.LoadFailures++
		log.Printf("audio: track %s load failed: %v", id, p.err)
		return
	}

	if e.generation.Load() != gen {
		// A newer transition started while this one loaded
		e.stats.TransitionsStale++
		return
	}

	if e.state != stateActive {
		e.pending = &pendingPhase{phase: phase, levelHint: levelHint}
		return
	}

	e.startSessionLocked(id, p.pair)
	e.preloadLookaheadLocked(phase, levelHint)
}

// startSessionLocked makes a loaded track audible: gain starts at zero,
// intro and loop share one sample clock, crossfade-in over D
func (e *Engine) startSessionLocked(id core.TrackID, pair *ClipPair) {
	sess := newPlaybackSession(id, pair, e.rate)

	e.device.Lock()
	sess.rampTo(1, constant.MusicCrossfadeDuration)
	e.graph.music.mixer.Add(sess)
	e.device.Unlock()

	e.current = sess
	e.currentTrack = id
}

// fadeOutCurrentLocked begins the fade of the audible session and clears
// the current pointer synchronously; the session lives on in the fading
// list until its teardown deadline
func (e *Engine) fadeOutCurrentLocked() {
	if e.current == nil {
		return
	}
	sess := e.current

	e.device.Lock()
	sess.rampTo(0, constant.MusicCrossfadeDuration)
	e.device.Unlock()

	e.fading = append(e.fading, fadingSession{
		sess:     sess,
		deadline: e.clock.Now().Add(constant.MusicCrossfadeDuration + constant.MusicTeardownEpsilon),
	})
	e.current = nil
	e.currentTrack = core.TrackNone
}

// sweepFadedLocked stops and detaches sessions whose teardown deadline has
// passed. Deliberately not a detached timer: cleanup runs on the control
// path where it is observable.
func (e *Engine) sweepFadedLocked() {
	if len(e.fading) == 0 {
		return
	}

	now := e.clock.Now()
	kept := e.fading[:0]
	for _, f := range e.fading {
		if now.Before(f.deadline) {
			kept = append(kept, f)
			continue
		}
		e.device.Lock()
		f.sess.stop()
		e.device.Unlock()
	}
	e.fading = kept
}

// preloadLookaheadLocked warms the track most likely needed next
// Nothing awaits the handle; a failed speculative load costs nothing
func (e *Engine) preloadLookaheadLocked(phase core.GamePhase, levelHint int) {
	id, ok := e.tracks.Lookahead(phase, levelHint)
	if !ok || id == e.currentTrack {
		return
	}
	if _, cached := e.cache.get(id); cached {
		return
	}
	def, defined := e.tracks.Definition(id)
	if !defined {
		return
	}
	e.cache.ensureLoad(id, e.fetchFunc(def))
}

// Preload warms the clip pair a phase would need, without playing anything
func (e *Engine) Preload(phase core.GamePhase, levelHint int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id, ok := e.tracks.Resolve(phase, levelHint)
	if !ok {
		return
	}
	if _, cached := e.cache.get(id); cached {
		return
	}
	def, defined := e.tracks.Definition(id)
	if !defined {
		return
	}
	e.cache.ensureLoad(id, e.fetchFunc(def))
}

// CurrentTrack returns the audible track id, or TrackNone during silence
// and while a target track is still loading
func (e *Engine) CurrentTrack() core.TrackID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentTrack
}
