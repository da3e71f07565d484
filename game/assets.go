package game

import (
	"fmt"
	"path/filepath"

	"github.com/golangdaddy/turnpike/models/npc"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
)

type loadResult struct {
	kind npc.Kind
	img  *ebiten.Image
	err  error
}

// AssetLoader loads actor sprites from disk in the background. Completions
// are queued and only delivered by Drain, which the frame loop calls, so
// actors are never touched off the simulation goroutine.
type AssetLoader struct {
	dir     string
	log     zerolog.Logger
	cache   map[npc.Kind]*ebiten.Image
	failed  map[npc.Kind]error
	pending map[npc.Kind][]func(any, error)
	results chan loadResult
}

// NewAssetLoader loads sprites named <kind>.png from dir
func NewAssetLoader(dir string, log zerolog.Logger) *AssetLoader {
	return &AssetLoader{
		dir:     dir,
		log:     log,
		cache:   make(map[npc.Kind]*ebiten.Image),
		failed:  make(map[npc.Kind]error),
		pending: make(map[npc.Kind][]func(any, error)),
		results: make(chan loadResult, len(npc.Kinds)),
	}
}

// Load implements npc.VisualLoader
func (l *AssetLoader) Load(kind npc.Kind, done func(any, error)) {
	if img, ok := l.cache[kind]; ok {
		done(img, nil)
		return
	}
	if err, ok := l.failed[kind]; ok {
		done(nil, err)
		return
	}

	waiting, inFlight := l.pending[kind]
	l.pending[kind] = append(waiting, done)
	if inFlight {
		return
	}

	path := filepath.Join(l.dir, kind.String()+".png")
	go func() {
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			err = fmt.Errorf("load %s sprite: %w", kind, err)
		}
		l.results <- loadResult{kind: kind, img: img, err: err}
	}()
}

// Drain delivers finished loads. It never blocks.
func (l *AssetLoader) Drain() {
	for {
		select {
		case res := <-l.results:
			l.deliver(res)
		default:
			return
		}
	}
}

func (l *AssetLoader) deliver(res loadResult) {
	waiting := l.pending[res.kind]
	delete(l.pending, res.kind)

	if res.err != nil {
		l.failed[res.kind] = res.err
		l.log.Warn().Err(res.err).Msg("sprite unavailable, drawing placeholder")
		for _, done := range waiting {
			done(nil, res.err)
		}
		return
	}

	l.cache[res.kind] = res.img
	l.log.Debug().Stringer("kind", res.kind).Int("waiting", len(waiting)).Msg("sprite loaded")
	for _, done := range waiting {
		done(res.img, nil)
	}
}
