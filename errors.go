// SPDX-License-Identifier: EPL-2.0

package clicktrack

import "errors"

var ErrInvalidConfig = errors.New("invalid configuration")
