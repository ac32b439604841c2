// SPDX-License-Identifier: EPL-2.0

package smf

import "errors"

var (
	ErrEmptyTimeline     = errors.New("timeline has no events")
	ErrInvalidResolution = errors.New("resolution must be between 1 and 32767 ticks per quarter")
)
