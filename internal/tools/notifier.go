package tools

import "log/slog"

// Notifier is the optional progress/logging sink a transport may attach to a
// tool invocation. It carries informational notifications only and never
// influences control flow.
type Notifier interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Info(string)    {}
func (NopNotifier) Warning(string) {}
func (NopNotifier) Error(string)   {}

// SlogNotifier forwards notifications to a structured logger. Used by the
// HTTP transport, which has no notification channel back to the client.
type SlogNotifier struct {
	Logger *slog.Logger
}

func (n SlogNotifier) Info(msg string)    { n.Logger.Info("tool_notification", "message", msg) }
func (n SlogNotifier) Warning(msg string) { n.Logger.Warn("tool_notification", "message", msg) }
func (n SlogNotifier) Error(msg string)   { n.Logger.Error("tool_notification", "message", msg) }
