package tui

import "github.com/runoshun/toilet-monitor/internal/usecase"

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgStarted is sent when the controller has loaded or seeded the checklist.
type MsgStarted struct {
	Out *usecase.StartOutput
}

func (MsgStarted) sealed() {}

// MsgPrinted is sent when the print command returns control to the TUI.
type MsgPrinted struct {
	Err error
}

func (MsgPrinted) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// Ensure all message types implement Msg.
var (
	_ Msg = MsgStarted{}
	_ Msg = MsgPrinted{}
	_ Msg = MsgError{}
)
