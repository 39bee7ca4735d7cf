// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var Logger *UserLog

type UserLog struct {
	log       *zap.Logger
	writer    io.Writer
	errWriter io.Writer
}

// NewUserLog replaces the user facing logger. Messages go to userwriter,
// errors to errwriter.
func NewUserLog(log *zap.Logger, userwriter io.Writer, errwriter io.Writer) {
	Logger = &UserLog{
		log:       log,
		writer:    userwriter,
		errWriter: errwriter,
	}
}

func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf("✓ %s", fmt.Sprintf(msg, args...))
	_, _ = fmt.Fprintln(ul.writer, formattedMsg)
	ul.log.Info(formattedMsg)
}

// PrintError writes msg to the error writer. It does not log, the console
// logger shares that writer.
func (ul *UserLog) PrintError(msg string, args ...interface{}) {
	_, _ = fmt.Fprintf(ul.errWriter, "\nERROR: %s\n", fmt.Sprintf(msg, args...))
}

// ConvertToStringWithThousandSeparator groups digits with underscores.
func ConvertToStringWithThousandSeparator(input uint64) string {
	p := message.NewPrinter(language.English)
	s := p.Sprintf("%d", input)
	return strings.ReplaceAll(s, ",", "_")
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
