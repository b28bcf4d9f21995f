package main

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/lixenwraith/nextbot-maze/audio"
	"github.com/lixenwraith/nextbot-maze/engine"
	"github.com/lixenwraith/nextbot-maze/parameter"
)

const postRetries = 60

var imageExts = []string{".png", ".webp", ".bmp"}

// loadSounds fills one slot per agent from <dir>/<index>.wav, synthesizing
// the slots without a file; runs off the loop goroutine
func loadSounds(p *audio.BeepPlayer, dir string, n int, logger *log.Logger) {
	for i := 0; i < n; i++ {
		if dir != "" {
			path := filepath.Join(dir, fmt.Sprintf("%d.wav", i))
			err := p.LoadWav(i, path)
			if err == nil {
				continue
			}
			if !os.IsNotExist(err) {
				logger.Warn("sound load failed", "path", path, "err", err)
			}
		}
		if err := p.LoadSynth(i); err != nil {
			logger.Warn("sound synth failed", "index", i, "err", err)
		}
	}
	logger.Debug("sounds loaded", "count", n)
}

// loadMusic starts the background loop; a missing or broken file leaves the music bus silent
func loadMusic(p *audio.BeepPlayer, path string, logger *log.Logger) {
	if err := p.LoadMusic(path); err != nil {
		logger.Warn("music load failed", "path", path, "err", err)
		return
	}
	logger.Debug("music looping", "path", path)
}

// loadVisuals reports each agent's image aspect from <dir>/<index>.{png,webp,bmp}
// Agents without an image get a square aspect
func loadVisuals(q *engine.VisualQueue, dir string, n int, logger *log.Logger) {
	for i := 0; i < n; i++ {
		aspect := 1.0
		if dir != "" {
			if a, ok := findAspect(dir, i, logger); ok {
				aspect = a
			}
		}
		// A full queue is drained once per tick
		posted := false
		for try := 0; try < postRetries && !posted; try++ {
			if posted = q.Post(engine.VisualUpdate{Index: i, Aspect: aspect}); !posted {
				time.Sleep(parameter.TickInterval)
			}
		}
		if !posted {
			logger.Warn("visual queue full", "index", i)
		}
	}
}

// findAspect returns the aspect of the first decodable image for index
func findAspect(dir string, index int, logger *log.Logger) (float64, bool) {
	for _, ext := range imageExts {
		path := filepath.Join(dir, fmt.Sprintf("%d%s", index, ext))
		a, err := imageAspect(path)
		if err == nil {
			return a, true
		}
		if !os.IsNotExist(err) {
			logger.Warn("image load failed", "path", path, "err", err)
		}
	}
	return 0, false
}

func imageAspect(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, err
	}
	if cfg.Height == 0 {
		return 0, fmt.Errorf("%s: zero height", path)
	}
	return float64(cfg.Width) / float64(cfg.Height), nil
}
