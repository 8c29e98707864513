/*
 * Copyright (c) 2024-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package foundation

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

var (
	logger    atomic.Pointer[zap.Logger]
	nopLogger = zap.NewNop()
)

// Logger returns the package logger
// It is a no-op logger by default, see SetLogger() and Configure()
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger replaces the package logger, nil restores the no-op one
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
