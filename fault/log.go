// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel used for the last message before a panic
const panicChannel = "PANIC"

// allow the log writer to reach the file before the panic unwinds
const flushDelay = 100 * time.Millisecond

var panicLog *logger.L

// Initialise - open the panic channel, logger.Initialise must
// already have been called
func Initialise() error {
	if nil != panicLog {
		return ErrAlreadyInitialised
	}
	panicLog = logger.New(panicChannel)
	if nil == panicLog {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and close the panic channel
func Finalise() {
	if nil == panicLog {
		return
	}
	panicLog.Flush()
	panicLog = nil
}

// PanicWithError - record where the failure was detected then panic
func PanicWithError(message string, err error) {
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	if _, file, line, ok := runtime.Caller(1); ok {
		critical("(%q:%d) %s", file, line, s)
	} else {
		critical("%s", s)
	}
	time.Sleep(flushDelay)
	panic(s)
}

// PanicIfError - panic only for a non-nil error
func PanicIfError(message string, err error) {
	if nil != err {
		PanicWithError(message, err)
	}
}

// without a channel the message goes to the console
func critical(format string, arguments ...interface{}) {
	if nil == panicLog {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	panicLog.Criticalf(format, arguments...)
	panicLog.Flush()
}
