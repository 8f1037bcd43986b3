package components

import "safeget/internal/engine"

func init() {
	engine.RegisterComponent("AudioSource", func() engine.Serializable {
		return NewAudioSource()
	})
}

type AudioSource struct {
	engine.BaseComponent

	AudioPath   string
	Volume      float32
	MaxDistance float32
	Loop        bool
	PlayOnStart bool
	Spatial     bool // 3D spatialization

	playing bool
	plays   int
}

func NewAudioSource() *AudioSource {
	return &AudioSource{
		Volume:      1.0,
		MaxDistance: 50.0,
		Spatial:     true,
	}
}

func (a *AudioSource) TypeName() string {
	return "AudioSource"
}

func (a *AudioSource) Serialize() map[string]any {
	return map[string]any{
		"audioPath":   a.AudioPath,
		"volume":      a.Volume,
		"maxDistance": a.MaxDistance,
		"loop":        a.Loop,
		"playOnStart": a.PlayOnStart,
		"spatial":     a.Spatial,
	}
}

func (a *AudioSource) Deserialize(data map[string]any) {
	readString(data, "audioPath", &a.AudioPath)
	readFloat(data, "volume", &a.Volume)
	readFloat(data, "maxDistance", &a.MaxDistance)
	readBool(data, "loop", &a.Loop)
	readBool(data, "playOnStart", &a.PlayOnStart)
	readBool(data, "spatial", &a.Spatial)
}

func (a *AudioSource) Start() {
	if a.PlayOnStart {
		a.Play()
	}
}

// Play starts playback
func (a *AudioSource) Play() {
	a.playing = true
	a.plays++
}

// Stop stops playback
func (a *AudioSource) Stop() {
	a.playing = false
}

// IsPlaying returns whether the source is currently playing
func (a *AudioSource) IsPlaying() bool {
	return a.playing
}

// PlayCount returns how many times Play was called.
func (a *AudioSource) PlayCount() int {
	return a.plays
}
