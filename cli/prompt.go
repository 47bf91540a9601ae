package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// errInputClosed means stdin was exhausted mid-command. Commands abort
// instead of retrying, since no further input can arrive.
var errInputClosed = errors.New("input closed")

func prompt(r *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := r.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil {
		// A final unterminated line still counts as input.
		if line != "" {
			return line, nil
		}
		return "", errInputClosed
	}
	return line, nil
}

func promptInt(r *bufio.Reader, w io.Writer, label string) (int, error) {
	for {
		raw, err := prompt(r, w, label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(raw)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(w, "Enter a number.")
	}
}

// otpPrompt reads a code or an "r" to resend, ticking the countdown by wall
// clock between reads so CanResend tracks real elapsed time.
type otpPrompt struct {
	countdown interface {
		Tick()
		SecondsLeft() int
		CanResend() bool
	}
	lastTick time.Time
}

func newOTPPrompt(cd interface {
	Tick()
	SecondsLeft() int
	CanResend() bool
}) *otpPrompt {
	return &otpPrompt{countdown: cd, lastTick: time.Now()}
}

func (p *otpPrompt) catchUp() {
	elapsed := int(time.Since(p.lastTick) / time.Second)
	for i := 0; i < elapsed; i++ {
		p.countdown.Tick()
	}
	if elapsed > 0 {
		p.lastTick = p.lastTick.Add(time.Duration(elapsed) * time.Second)
	}
}

// read returns (code, wantsResend).
func (p *otpPrompt) read(r *bufio.Reader, w io.Writer) (string, bool, error) {
	p.catchUp()
	label := "Enter the 4-digit code"
	if p.countdown.CanResend() {
		label += " (or 'r' to resend)"
	} else {
		label += fmt.Sprintf(" (resend in %ds)", p.countdown.SecondsLeft())
	}
	input, err := prompt(r, w, label+": ")
	if err != nil {
		return "", false, err
	}
	p.catchUp()
	if strings.EqualFold(input, "r") {
		return "", true, nil
	}
	return input, false, nil
}
