// SPDX-License-Identifier: MIT

package diffmap

import (
	"fmt"

	"github.com/katalvlaran/diffmaps/kernel"
)

// ParseKernel resolves a kernel by configuration name and keyword parameters
// (see kernel.Parse) and reports failures as ErrInvalidArgument.
func ParseKernel(name string, p kernel.Params) (kernel.Spec, error) {
	spec, err := kernel.Parse(name, p)
	if err != nil {
		return nil, fmt.Errorf("diffmap.ParseKernel: %w", translateError(err))
	}

	return spec, nil
}
