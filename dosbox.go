// This file is part of dosbox-staging.
//
// dosbox-staging is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dosbox-staging is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dosbox-staging.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/deviant-syndrome/dosbox-staging/hardware/disney"
	"github.com/deviant-syndrome/dosbox-staging/hardware/ioports"
	"github.com/deviant-syndrome/dosbox-staging/hardware/midi"
	"github.com/deviant-syndrome/dosbox-staging/hardware/midi/backends"
	"github.com/deviant-syndrome/dosbox-staging/hardware/pic"
	"github.com/deviant-syndrome/dosbox-staging/logger"
	"github.com/deviant-syndrome/dosbox-staging/mixer"
	"github.com/deviant-syndrome/dosbox-staging/modalflag"
	"github.com/deviant-syndrome/dosbox-staging/sdlmixer"
	"github.com/deviant-syndrome/dosbox-staging/version"
	"github.com/deviant-syndrome/dosbox-staging/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "LISTMIDI")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "LISTMIDI":
		err = listMIDI(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// listMIDI prints every output backend along with the devices it can reach.
func listMIDI(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	rtr := midi.NewRouter(pic.NewWall(), backends.DefaultRegistry(),
		midi.Config{Device: backends.NoneName})
	defer rtr.Close()

	rtr.ListAll(md.Output)

	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	device := md.AddString("mididevice", "auto", "MIDI backend: auto, rtmidi, dump, none")
	config := md.AddString("midiconfig", "", "configuration string passed to the MIDI backend")
	useDisney := md.AddBool("disney", true, "emulate the Disney Sound Source")
	filterPref := md.AddString("disneyfilter", "on", "Disney Sound Source output filter: on, off")
	wav := md.AddString("wav", "", "record Disney Sound Source audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(
		`Raw MIDI bytes read from stdin are decoded and routed to the selected
output backend. Pipe a .syx dump or a live capture into the program.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	logger.Logf(version.ApplicationName, "revision: %s", version.Revision)

	clk := pic.NewWall()
	bus := ioports.NewDispatch()

	rtr := midi.NewRouter(clk, backends.DefaultRegistry(), midi.Config{
		Device: *device,
		Config: *config,
	})
	defer rtr.Close()

	if !rtr.Available() && *device != backends.NoneName {
		fmt.Println("! no MIDI output device available")
	}

	if *useDisney {
		dsy := disney.NewDisney(clk, bus, *filterPref)
		defer dsy.Close()

		var src mixer.FrameSource = dsy

		if *wav != "" {
			aw, err := wavwriter.New(*wav, disney.DacRateHz)
			if err != nil {
				return err
			}
			defer func() {
				if err := aw.End(); err != nil {
					fmt.Printf("! %v\n", err)
				}
			}()
			src = &captureSource{src: src, capture: aw}
		}

		var filter *mixer.LowPass
		if on, cutoffHz := dsy.FilterSpec(); on {
			filter = mixer.NewLowPass(cutoffHz, disney.DacRateHz)
		}

		ply, err := sdlmixer.NewPlayer(src, disney.DacRateHz, filter)
		if err != nil {
			return err
		}
		defer ply.Close()
	}

	// stop the stdin bridge cleanly on ctrl-c
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	byteChan := make(chan uint8)
	readErrChan := make(chan error)

	go func() {
		rdr := bufio.NewReader(os.Stdin)
		for {
			b, err := rdr.ReadByte()
			if err != nil {
				readErrChan <- err
				return
			}
			byteChan <- b
		}
	}()

	for {
		select {
		case <-intChan:
			fmt.Println("\r")
			return nil

		case err := <-readErrChan:
			if err == io.EOF {
				return nil
			}
			return err

		case b := <-byteChan:
			rtr.RawOutByte(b, 0)
		}
	}
}

// captureSource tees pulled frames into a wav file on the way to the
// player.
type captureSource struct {
	src     mixer.FrameSource
	capture *wavwriter.WavWriter
}

func (c *captureSource) PullFrames(buf []mixer.Frame) {
	c.src.PullFrames(buf)
	c.capture.AddFrames(buf)
}
