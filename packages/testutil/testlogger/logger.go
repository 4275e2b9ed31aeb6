// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

package testlogger

import (
	"time"

	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
)

type TestingT interface { // Interface so there's no need to pass the concrete type
	Name() string
}

// NewLogger produces a debug logger named after the running test.
func NewLogger(t TestingT, opts ...options.Option[log.Options]) log.Logger {
	level, err := log.LevelFromString("debug")
	if err != nil {
		panic(err)
	}
	return log.NewLogger(append([]options.Option[log.Options]{
		log.WithName(t.Name()),
		log.WithLevel(level),
		log.WithTimeFormat(time.RFC3339),
	}, opts...)...)
}
