package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// sound 简单的提示音，初始化失败时静音运行
type sound struct {
	enabled bool
}

func newSound(enable bool) *sound {
	s := &sound{}
	if !enable {
		return s
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("[Sound] Audio initialization failed: %v", err)
		return s
	}
	s.enabled = true
	return s
}

// tone 播放一段正弦音
func (s *sound) tone(freq float64, d time.Duration) {
	if !s.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("[Sound] SineTone(%v) failed: %v", freq, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// collect 收集星星
func (s *sound) collect() { s.tone(880, 50*time.Millisecond) }

// gameOver 被炸弹击中
func (s *sound) gameOver() { s.tone(220, 300*time.Millisecond) }

func (s *sound) close() {
	if s.enabled {
		speaker.Close()
	}
}
