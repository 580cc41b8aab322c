// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/audbuf/utils"
)

type config struct {
	output      string
	inputs      []string
	gains       []float32
	play        bool
	showVersion bool

	// From the environment.
	sampleRate  int
	bitDepth    int
	chunkFrames int
	masterGain  float32
}

func (c *config) String() string {
	return fmt.Sprintf("output=%v, inputs=%v, gains=%v, play=%v, sampleRate=%v, bitDepth=%v, chunk=%v, master=%v",
		c.output, c.inputs, c.gains, c.play, c.sampleRate, c.bitDepth, c.chunkFrames, c.masterGain)
}

// parseConfig reads flags from args and the BUFMIX_* settings from the
// environment.
func parseConfig(args []string) (*config, error) {
	c := &config{}
	var gains string

	fs := flag.NewFlagSet("bufmix", flag.ContinueOnError)
	fs.StringVar(&c.output, "o", "", "Output file, .wav, .aif or .aiff")
	fs.StringVar(&gains, "gain", "", "Comma separated gain per input, missing gains are 1")
	fs.BoolVar(&c.play, "play", false, "Play the mix after writing it")
	fs.BoolVar(&c.showVersion, "v", false, "Print version and quit")
	fs.BoolVar(&c.showVersion, "version", false, "Print version and quit")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrapf(err, "parse flags")
	}
	if c.showVersion {
		return c, nil
	}

	c.inputs = fs.Args()
	if c.output == "" {
		return nil, errors.New("no output, use -o")
	}
	if len(c.inputs) == 0 {
		return nil, errors.New("no inputs")
	}

	var err error
	if c.gains, err = parseGains(gains); err != nil {
		return nil, errors.Wrapf(err, "parse -gain %v", gains)
	}
	if len(c.gains) > len(c.inputs) {
		return nil, errors.Errorf("%v gains for %v inputs", len(c.gains), len(c.inputs))
	}

	if c.sampleRate, err = envInt("BUFMIX_SAMPLE_RATE"); err != nil {
		return nil, err
	}
	if c.sampleRate < 0 {
		return nil, errors.Errorf("invalid BUFMIX_SAMPLE_RATE %v", c.sampleRate)
	}

	if c.bitDepth, err = envInt("BUFMIX_BIT_DEPTH"); err != nil {
		return nil, err
	}
	if _, ok := utils.FullScale(c.bitDepth); !ok {
		return nil, errors.Errorf("invalid BUFMIX_BIT_DEPTH %v", c.bitDepth)
	}

	if c.chunkFrames, err = envInt("BUFMIX_CHUNK"); err != nil {
		return nil, err
	}
	if c.chunkFrames <= 0 {
		return nil, errors.Errorf("invalid BUFMIX_CHUNK %v", c.chunkFrames)
	}

	gain, err := strconv.ParseFloat(os.Getenv("BUFMIX_MASTER_GAIN"), 32)
	if err != nil {
		return nil, errors.Wrapf(err, "parse BUFMIX_MASTER_GAIN")
	}
	c.masterGain = float32(gain)

	return c, nil
}

// parseGains parses "1,0.5,,2"; empty entries mean unity.
func parseGains(s string) ([]float32, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	gains := make([]float32, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			gains[i] = 1
			continue
		}
		v, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "gain %v", i)
		}
		gains[i] = float32(v)
	}
	return gains, nil
}

func envInt(key string) (int, error) {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0, errors.Wrapf(err, "parse %v", key)
	}
	return v, nil
}
