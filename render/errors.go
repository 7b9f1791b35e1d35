// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var (
	ErrSourceNotLoaded   = errors.New("source audio is not loaded")
	ErrInvalidParameters = errors.New("invalid render parameters")

	ErrDuplicateStage = errors.New("stage already in graph")
	ErrUnknownStage   = errors.New("stage input not in graph")
	ErrEmptyGraph     = errors.New("graph has no stages")
)
