// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/audbuf/formats/vorbis"
)

// ExampleReadBuffer decodes an Ogg Vorbis file and reports each channel's
// peak level.
func ExampleReadBuffer() {
	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	buf, rate, err := vorbis.ReadBuffer(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d Hz, %d frames\n", rate, buf.Frames())
	for c := range buf.Channels() {
		var peak float32
		for _, v := range buf.Channel(c) {
			peak = max(peak, v, -v)
		}
		fmt.Printf("channel %d peak %.3f\n", c, peak)
	}
}
