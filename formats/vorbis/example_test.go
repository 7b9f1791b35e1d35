// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/suncore/audio"
	"github.com/ik5/suncore/formats/vorbis"
)

func ExampleDecoder() {
	reg := audio.NewRegistry()
	reg.Register("ogg", vorbis.Decoder{})

	_, err := reg.Load("ogg", bytes.NewReader(nil))
	fmt.Println(err != nil)
	// Output: true
}
