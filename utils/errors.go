// SPDX-License-Identifier: EPL-2.0

package utils

import "errors"

var (
	ErrChannelLengthMismatch = errors.New("channel lengths do not match")
)
