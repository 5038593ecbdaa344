package domain

// ProtocolVersion is carried on every cohort message and reply. It is used
// for wire-compatibility diagnostics only, never for business logic.
const ProtocolVersion uint32 = 1

type Status int32

const (
	Staged Status = 0
	Ready  Status = 1
	Commit Status = 2
	Abort  Status = 3
)

func (s Status) String() string {
	switch s {
	case Staged:
		return "STAGED"
	case Ready:
		return "READY"
	case Commit:
		return "COMMIT"
	case Abort:
		return "ABORT"
	}
	return "UNKNOWN"
}

type Entry struct {
	TxID  string `json:"tx_id"`
	Key   string `json:"key"`
	State Status `json:"state"`
	Len   int    `json:"len"`
	Data  []byte `json:"data"`
}
