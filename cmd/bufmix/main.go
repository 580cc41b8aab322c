// SPDX-License-Identifier: EPL-2.0

// Command bufmix mixes audio files of the same rate and channel layout
// into one WAV or AIFF file.
//
//	bufmix -o mix.wav [-gain 1,0.5] [-play] drums.wav bass.aiff
//
// Shorter inputs are padded with silence to the longest one. Settings that
// rarely change come from the environment or a .env file:
//
//	BUFMIX_SAMPLE_RATE  required input rate in Hz, 0 to follow the first input
//	BUFMIX_BIT_DEPTH    output bit depth (8, 16, 24 or 32)
//	BUFMIX_CHUNK        frames per playback chunk
//	BUFMIX_MASTER_GAIN  gain applied to the finished mix
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/joho/godotenv"
)

const version = "v0.1.0"

func main() {
	ctx := logger.WithContext(context.Background())

	if err := doMain(ctx, os.Args[1:]); err != nil {
		logger.Ef(ctx, "run err %+v", err)
		os.Exit(1)
	}

	logger.Tf(ctx, "run ok")
}

func doMain(ctx context.Context, args []string) error {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "load .env")
	}
	setEnvDefault("BUFMIX_SAMPLE_RATE", "0")
	setEnvDefault("BUFMIX_BIT_DEPTH", "16")
	setEnvDefault("BUFMIX_CHUNK", "4096")
	setEnvDefault("BUFMIX_MASTER_GAIN", "1")

	conf, err := parseConfig(args)
	if err != nil {
		return errors.Wrapf(err, "parse config")
	}
	if conf.showVersion {
		fmt.Println(strings.TrimPrefix(version, "v"))
		return nil
	}
	logger.Tf(ctx, "load config as %v", conf)

	// Install signals.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer signal.Stop(sc)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go watchSignals(ctx, cancel, sc)

	mix, rate, err := mixFiles(ctx, conf)
	if err != nil {
		return errors.Wrapf(err, "mix %v inputs", len(conf.inputs))
	}

	if err := writeOutput(conf.output, mix, rate, conf.bitDepth); err != nil {
		return errors.Wrapf(err, "write %v", conf.output)
	}
	logger.Tf(ctx, "write %v ok, %v at %vHz, %v-bit", conf.output, mix, rate, conf.bitDepth)

	if conf.play {
		if err := play(ctx, mix, rate, conf.chunkFrames); err != nil {
			return errors.Wrapf(err, "play %v", conf.output)
		}
		logger.Tf(ctx, "play %v done", conf.output)
	}

	return nil
}

// watchSignals cancels the run on the first signal and returns once that
// happens or ctx is done.
func watchSignals(ctx context.Context, cancel context.CancelFunc, sc <-chan os.Signal) {
	select {
	case s := <-sc:
		logger.Tf(ctx, "Got signal %v", s)
		cancel()
	case <-ctx.Done():
	}
}

// setEnvDefault set env key=value if not set.
func setEnvDefault(key, value string) {
	if os.Getenv(key) == "" {
		os.Setenv(key, value)
	}
}
