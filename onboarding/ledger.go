package onboarding

// Kind tags a ledger entry with the collection the write went to.
type Kind int

const (
	KindUser Kind = iota
	KindProfile
	KindAddress
	KindParent
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindProfile:
		return "profile"
	case KindAddress:
		return "address"
	case KindParent:
		return "parent"
	case KindFile:
		return "file"
	}

	return "unknown"
}

type Entry struct {
	Kind   Kind
	UserID string
}

// Ledger records, in creation order, every write that succeeded during one
// onboarding attempt. It is the sole input to rollback.
type Ledger struct {
	entries []Entry
}

func (l *Ledger) Record(k Kind, userid string) {
	l.entries = append(l.entries, Entry{Kind: k, UserID: userid})
}

func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger) Empty() bool {
	return len(l.entries) == 0
}

// FullLedger is the ledger of a completed onboarding: every kind once, in
// creation order. Cascading user deletion reuses rollback with it.
func FullLedger(userid string) *Ledger {
	l := &Ledger{}
	l.Record(KindUser, userid)
	l.Record(KindProfile, userid)
	l.Record(KindAddress, userid)
	l.Record(KindParent, userid)
	l.Record(KindFile, userid)
	return l
}
