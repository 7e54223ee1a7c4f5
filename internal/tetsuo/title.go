package tetsuo

import (
	"fmt"

	"github.com/Faultbox/tetsuo/internal/assets"
	"github.com/Faultbox/tetsuo/internal/engine/geometry"
	"github.com/Faultbox/tetsuo/internal/engine/text"
)

// TitleFuture resolves to the extruded title mesh.
type TitleFuture = Future[*geometry.Geometry]

// BuildTitle waits for the font and extrudes label off the calling thread.
// Every failure is reported wrapped in ErrTitleUnavailable.
func BuildTitle(fonts <-chan assets.Result[*text.Font], label string, opts text.Options) *TitleFuture {
	ch := make(chan assets.Result[*geometry.Geometry], 1)
	go func() {
		defer close(ch)
		g, err := buildTitle(fonts, label, opts)
		ch <- assets.Result[*geometry.Geometry]{Value: g, Err: err}
	}()
	return NewFuture[*geometry.Geometry](ch)
}

func buildTitle(fonts <-chan assets.Result[*text.Font], label string, opts text.Options) (*geometry.Geometry, error) {
	res, ok := <-fonts
	if !ok {
		return nil, fmt.Errorf("%w: font loader closed", ErrTitleUnavailable)
	}
	if res.Err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTitleUnavailable, res.Err)
	}
	g, err := res.Value.Geometry(label, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: extrude %q: %w", ErrTitleUnavailable, label, err)
	}
	return g, nil
}
