// SPDX-License-Identifier: EPL-2.0

package reverb

import "errors"

var (
	ErrInvalidParameters = errors.New("impulse response needs positive sample rate, decay and duration")
)
