package logger

const NA = "N/A"

// log level
const (
	LL_ERROR LogLevel = iota
	LL_FATAL
	LL_INFO
	LL_DEBUG
)

// log stream
const (
	LS_CHARITIES Logstream = iota
	LS_FATAL
	LS_NATS
	LS_WEBHOOKS
	LS_MEERKAT
	LS_SWEEP
)

type Logstream uint8
type LogLevel uint8

func (l Logstream) ToString() string {
	return [...]string{"charities", "fatal", "nats", "webhooks", "meerkat", "sweep"}[l]
}

func (l LogLevel) ToString() string {
	return [...]string{"ERROR", "FATAL", "INFO", "DEBUG"}[l]
}
