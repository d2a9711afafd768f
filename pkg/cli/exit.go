/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	stderrors "errors"

	"github.com/NVIDIA/appctl/pkg/errors"
)

// Process exit statuses.
const (
	exitFailure     = 1
	exitUsage       = 2
	exitIO          = 3
	exitUnavailable = 4
	exitTimeout     = 5
)

// errorCode classifies a command error. A timeout anywhere in the chain wins,
// errors without a code are internal.
func errorCode(err error) errors.ErrorCode {
	if errors.HasCode(err, errors.ErrCodeTimeout) || stderrors.Is(err, context.DeadlineExceeded) {
		return errors.ErrCodeTimeout
	}
	if code := errors.CodeOf(err); code != "" {
		return code
	}
	return errors.ErrCodeInternal
}

func exitStatus(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeNotFound, errors.ErrCodeInvalidRequest:
		return exitUsage
	case errors.ErrCodeIO:
		return exitIO
	case errors.ErrCodeUnavailable, errors.ErrCodeUnknownState:
		return exitUnavailable
	case errors.ErrCodeTimeout:
		return exitTimeout
	default:
		return exitFailure
	}
}
