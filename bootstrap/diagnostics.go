package bootstrap

import (
	"github.com/sirupsen/logrus"
)

// Severity is the bitmask of diagnostic message severities a sink captures.
type Severity uint32

const (
	SeverityVerbose Severity = 1 << iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch {
	case s&SeverityError != 0:
		return "error"
	case s&SeverityWarning != 0:
		return "warning"
	case s&SeverityInfo != 0:
		return "info"
	case s&SeverityVerbose != 0:
		return "verbose"
	}
	return "none"
}

// MessageType is the bitmask of diagnostic message categories a sink captures.
type MessageType uint32

const (
	MessageGeneral MessageType = 1 << iota
	MessageValidation
	MessagePerformance

	MessageAll = MessageGeneral | MessageValidation | MessagePerformance
)

func (t MessageType) String() string {
	var out string
	for _, bit := range []struct {
		flag MessageType
		name string
	}{
		{MessageGeneral, "general"},
		{MessageValidation, "validation"},
		{MessagePerformance, "performance"},
	} {
		if t&bit.flag == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += bit.name
	}
	if out == "" {
		return "none"
	}
	return out
}

type SinkFilter struct {
	Severities   Severity
	MessageTypes MessageType
}

// DefaultSinkFilter captures informational messages and above, of every type.
var DefaultSinkFilter = SinkFilter{
	Severities:   SeverityInfo | SeverityWarning | SeverityError,
	MessageTypes: MessageAll,
}

type Message struct {
	Severity    Severity
	Type        MessageType
	MessageName string
	Text        string
}

// SinkCallback receives driver messages on a driver-chosen thread. The
// return value is what the driver gets back: false means continue.
type SinkCallback func(msg Message) bool

type SinkOptions struct {
	Filter   SinkFilter
	Callback SinkCallback
}

// loggingSink returns sink options that forward every message to log.
func loggingSink(log logrus.FieldLogger) SinkOptions {
	return SinkOptions{
		Filter: DefaultSinkFilter,
		Callback: func(msg Message) bool {
			entry := log.WithFields(logrus.Fields{
				"severity": msg.Severity,
				"type":     msg.Type,
			})
			if msg.MessageName != "" {
				entry = entry.WithField("id", msg.MessageName)
			}

			switch {
			case msg.Severity&SeverityError != 0:
				entry.Error(msg.Text)
			case msg.Severity&SeverityWarning != 0:
				entry.Warn(msg.Text)
			case msg.Severity&SeverityInfo != 0:
				entry.Info(msg.Text)
			default:
				entry.Debug(msg.Text)
			}
			return false
		},
	}
}
