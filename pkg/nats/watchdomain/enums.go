package watchdomain

// subjects for nats

var AlertSubjects = [...]string{"watchdog.alerts.orphans"}

type SubjAlertType uint8

const (
	SubjAlertOrphans SubjAlertType = iota
)

func (s SubjAlertType) String() string {
	return AlertSubjects[s]
}
