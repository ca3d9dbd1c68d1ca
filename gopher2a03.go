// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/gui"
	"github.com/jetsetilly/gopher2a03/gui/sdlaudio"
	"github.com/jetsetilly/gopher2a03/gui/sdlplay"
	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher2a03/hardware/preferences"
	"github.com/jetsetilly/gopher2a03/hardware/television"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/modalflag"
	"github.com/jetsetilly/gopher2a03/prefs"
	"github.com/jetsetilly/gopher2a03/screenshot"
	"github.com/jetsetilly/gopher2a03/statsview"
	"github.com/jetsetilly/gopher2a03/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy()

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service() error
}

// communication between the main() function and the launch() function. this
// is required because SDL requires window event handling (including creation)
// to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync, os.Args[1:])

	// a closed channel is always ready. it is used to select the Service()
	// function of the gui when there is nothing else to do
	ready := make(chan struct{})
	close(ready)

	done := false
	var gui GuiCreator
	for !done {
		// without a gui there is nothing to service and we can wait for the
		// next request
		var service <-chan struct{}
		if gui != nil {
			service = ready
		}

		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy()
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy()
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				// stopping the default handler doesn't affect handlers
				// installed by the requester
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		case <-service:
			if err := gui.Service(); err != nil {
				logger.Log(logger.Allow, "gui", err)
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "BASIC", "TRACE", "FUNCTIONAL", "INFO")
	md.AdditionalHelp(`  RUN         play an NES cartridge in a window
  BASIC       run a BASIC interpreter ROM in the terminal
  TRACE       trace CPU execution of an NES cartridge (nestest.log format)
  FUNCTIONAL  run a 6502 functional test binary to completion
  INFO        show the iNES header of an NES cartridge`)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "BASIC":
		err = basicMode(md, sync)

	case "TRACE":
		err = trace(md, os.Stdout)

	case "FUNCTIONAL":
		err = functional(md, os.Stdout)

	case "INFO":
		err = info(md, os.Stdout)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// load the cartridge file and create the mapper. the loader is returned as
// well as the mapper so that the caller can inspect the iNES header.
func loadCartridge(filename string) (cartridgeloader.Loader, cartridge.Mapper, error) {
	cl := cartridgeloader.NewLoader(filename)
	if err := cl.Load(); err != nil {
		return cl, nil, err
	}
	cart, err := cartridge.NewMapper(cl)
	if err != nil {
		return cl, nil, err
	}
	return cl, cart, nil
}

// write a dot graph of the console to the named file.
func dumpMemviz(filename string, nes *hardware.NES) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("memviz: %v", err)
		}
	}()
	memviz.Map(f, nes)
	return nil
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	scale := md.AddInt("scale", 0, "pixel scale of the window (0 uses the preference value)")
	wav := md.AddString("wav", "", "record audio to wav file")
	shot := md.AddString("screenshot", "", "save the last frame to a PNG file on exit")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	mviz := md.AddString("memviz", "", "write a dot graph of the console to file before running")
	override := md.AddString("prefs", "", "preferences to use instead of saved values (eg. controller.turbo::false; cpu.clock::1662607)")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if stats != nil && *stats {
		defer statsview.Launch(os.Stdout)()
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *override != "" {
		prefs.PushCommandLineStack(*override)
	}

	prf, err := preferences.NewPreferences()

	// overrides are consumed when the preferences are loaded. anything left
	// over is not a recognised preference
	if *override != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unrecognised preferences: %s", unused)
		}
	}

	if err != nil {
		return err
	}

	if *scale <= 0 {
		*scale = prf.PixelScale.Get().(int)
	}

	_, cart, err := loadCartridge(md.GetArg(0))
	if err != nil {
		return err
	}

	tv := television.NewTelevision()
	defer tv.End()

	nes, err := hardware.NewNES(tv, cart, prf)
	if err != nil {
		return err
	}

	if *mviz != "" {
		if err := dumpMemviz(*mviz, nes); err != nil {
			return err
		}
	}

	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw, err = wavwriter.New(*wav, nes.SampleRate())
		if err != nil {
			return err
		}
		nes.AddAudioSink(aw)
	}

	// events from the gui. buffered so that the main thread is not held up
	events := make(chan gui.Event, 64)

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdlplay.NewSdlPlay(tv, *scale, events)
	}

	// wait for creator result
	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	// ctrl-c is handled here so that the wav file and screenshot can be
	// written before the program ends
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// audio is optional. the emulation runs unthrottled without it
	aud, err := sdlaudio.NewAudio(nes.SampleRate())
	if err != nil {
		logger.Log(logger.Allow, "sdlaudio", err)
	} else {
		queue := nes.AudioQueue()
		audDone := make(chan bool)
		go func() {
			defer close(audDone)
			if err := aud.Service(ctx, queue); err != nil {
				logger.Log(logger.Allow, "sdlaudio", err)
			}
		}()
		defer func() {
			cancel()
			<-audDone
			aud.Close()
		}()
	}

	kb := gui.NewKeyboard(nes.Controller, nil, prf.Turbo.Get().(bool))

	logger.Logf(logger.Allow, "nes", "starting emulation of %s", md.GetArg(0))

	runErr := make(chan error, 1)
	go func() {
		runErr <- nes.Run(ctx, nil)
	}()

	err = func() error {
		for {
			select {
			case <-intChan:
				cancel()
			case err := <-runErr:
				return err
			case ev := <-events:
				switch ev := ev.(type) {
				case gui.EventWindowClose:
					cancel()
				case gui.EventKeyboard:
					if _, err := kb.HandleEvent(ev); err != nil {
						logger.Log(logger.Allow, "gui", err)
					}
				}
			}
		}
	}()

	logger.Logf(logger.Allow, "nes", "emulation stopped after %d frames (%d dropped)", tv.FrameNum(), tv.Dropped())

	if err != nil {
		return err
	}

	if *shot != "" {
		if err := screenshot.Save(*shot, tv.LastFrame(), *scale); err != nil {
			return err
		}
	}

	if aw != nil {
		if err := aw.EndMixing(); err != nil {
			return err
		}
	}

	// preferences overridden on the command line are not saved
	if *override != "" {
		return nil
	}
	return prf.Save()
}

// open the named file for writing or return stdout if the name is empty. the
// returned function closes the file.
func createOutput(filename string, stdout io.Writer) (io.Writer, func() error, error) {
	if filename == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
