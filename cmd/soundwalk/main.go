// SPDX-License-Identifier: EPL-2.0

// Command soundwalk plays a generative soundscape from directories of
// audio clips, one independent clip walk per directory.
package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/spf13/pflag"

	"github.com/ik5/soundwalk"
	"github.com/ik5/soundwalk/playback"
	"github.com/ik5/soundwalk/stream"
)

func main() {
	var (
		seed      = pflag.Uint64("seed", 0, "seed for a reproducible clip walk, 0 seeds from entropy")
		bufFrames = pflag.Int("buffer", 4096, "device buffer length in frames")
		render    = pflag.String("render", "", "render to this WAV file instead of playing")
		duration  = pflag.Int("duration", 60, "seconds to capture with --render")
	)
	pflag.Parse()

	dirs := pflag.Args()
	if len(dirs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: soundwalk [flags] <clip-dir> [<clip-dir>...]")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	log.SetFlags(0)
	log.SetPrefix("soundwalk: ")

	cfg := soundwalk.Config{
		Warn: func(err error) { log.Println("warning:", err) },
	}
	if *seed != 0 {
		cfg.Rand = rand.New(rand.NewPCG(*seed, 0))
	}

	mixer, format, err := soundwalk.Build(dirs, cfg)
	if err != nil {
		log.Fatal(err)
	}

	// A member dropping out of the mix is worth a line but not a stop.
	onError := func(err error) { log.Println(err) }

	if *render != "" {
		if err := renderFile(*render, mixer, format, *duration, onError); err != nil {
			log.Fatal(err)
		}
		return
	}

	device, err := playback.OpenDevice(format.Channels, format.SampleRate, *bufFrames)
	if err != nil {
		log.Fatal(err)
	}

	playErr := device.Play(mixer, onError)
	if err := device.Close(); playErr == nil {
		playErr = err
	}
	if playErr != nil {
		log.Fatal(playErr)
	}
}

func renderFile(path string, mixer *stream.Mixer, format soundwalk.Format, seconds int, onError func(error)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	renderErr := playback.Render(f, mixer, format.Channels, format.SampleRate, seconds*format.SampleRate, onError)
	if err := f.Close(); renderErr == nil {
		renderErr = err
	}
	return renderErr
}
