package assets

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/tetsuo/internal/engine/text"
	"github.com/Faultbox/tetsuo/internal/engine/texture"
	"github.com/Faultbox/tetsuo/internal/logger"
)

// Result is the outcome of an asynchronous load.
type Result[T any] struct {
	Value T
	Err   error
}

// async runs load in a goroutine. The returned channel yields exactly one
// result and is then closed, so a receive never blocks forever.
func async[T any](load func() (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		v, err := load()
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}

// LoadImage reads and decodes an image, downscaled to fit maxSize.
func (m *Manager) LoadImage(name string, maxSize int) (*texture.Image, error) {
	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	img, format, err := texture.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	out := texture.FromImage(img, maxSize)
	logger.Info("image decoded",
		zap.String("name", name),
		zap.String("format", format),
		zap.Int("width", out.Width),
		zap.Int("height", out.Height),
	)
	return out, nil
}

// LoadImageAsync is LoadImage run in the background.
func (m *Manager) LoadImageAsync(name string, maxSize int) <-chan Result[*texture.Image] {
	return async(func() (*texture.Image, error) {
		return m.LoadImage(name, maxSize)
	})
}

// LoadFont parses a TrueType font. An empty name selects the embedded face.
func (m *Manager) LoadFont(name string) (*text.Font, error) {
	if name == "" {
		f, err := text.Default()
		if err != nil {
			return nil, fmt.Errorf("embedded font: %w", err)
		}
		logger.Info("font loaded", zap.String("name", f.Name()), zap.Bool("embedded", true))
		return f, nil
	}

	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	f, err := text.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	logger.Info("font loaded", zap.String("name", f.Name()), zap.String("file", name))
	return f, nil
}

// LoadFontAsync is LoadFont run in the background.
func (m *Manager) LoadFontAsync(name string) <-chan Result[*text.Font] {
	return async(func() (*text.Font, error) {
		return m.LoadFont(name)
	})
}
