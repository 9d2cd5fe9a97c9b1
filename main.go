package main

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/alecthomas/kong"
	"github.com/prometheus/common/log"

	wde "github.com/skelterjohn/go.wde"
	_ "github.com/skelterjohn/go.wde/init"
	xdraw "golang.org/x/image/draw"

	"github.com/Joshua-Ball1/Stopwatch/pkg/config"
	"github.com/Joshua-Ball1/Stopwatch/pkg/render"
	"github.com/Joshua-Ball1/Stopwatch/pkg/stopwatch"
)

type runCmd struct {
	Config string `help:"Path to configuration file" type:"path"`
}

func (r *runCmd) Run() error {
	cfg := config.Default()
	if r.Config != "" {
		var err error
		cfg, err = config.Load(r.Config)
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sw := stopwatch.New()

	go func() {
		if err := sw.Run(ctx); err != nil {
			log.Fatalln(err)
		}
	}()

	go func() {
		// stopping the backend loop unblocks wde.Run below and ends
		// the process
		defer wde.Stop()

		scale := *cfg.Display.Scale
		base := render.Bounds()

		w, err := wde.NewWindow(base.Dx()*scale, base.Dy()*scale)
		if err != nil {
			log.Errorln(err)
			return
		}
		w.SetTitle(cfg.Display.Title)
		w.LockSize(true)
		w.Show()

		events := w.EventChan()

		frames := 0
		ticker := time.Tick(time.Second)

		for {
			select {

			case <-ticker:
				w.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Display.Title, frames))
				frames = 0

			case event := <-events:
				switch v := event.(type) {
				case wde.CloseEvent:
					return
				case wde.KeyTypedEvent:
					switch v.Key {
					case wde.KeyEscape:
						return
					case cfg.Keys.Start:
						sw.Press(stopwatch.ButtonStart)
					case cfg.Keys.Pause:
						sw.Press(stopwatch.ButtonPause)
					case cfg.Keys.Reset:
						sw.Press(stopwatch.ButtonReset)
					}
				}

			case frame := <-sw.FrameChan:
				screenSize := w.Screen().Bounds()

				buffer := render.Draw(frame)
				scaled := image.NewRGBA(screenSize)
				xdraw.NearestNeighbor.Scale(scaled, screenSize, buffer, buffer.Bounds(), xdraw.Src, nil)

				w.Screen().CopyRGBA(scaled, screenSize)
				w.FlushImage(screenSize)

				frames++
			}
		}
	}()

	wde.Run()

	return nil
}

var root struct {
	Run runCmd `cmd:"" help:"run the stopwatch"`
}

func main() {
	cli := kong.Parse(&root)
	err := cli.Run()
	cli.FatalIfErrorf(err)
}
