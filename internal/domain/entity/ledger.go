package entity

// DefaultMaxHistoryEntries is the ledger capacity used when none is configured.
const DefaultMaxHistoryEntries = 100

// HistoryLedger is the bounded, newest-first collection of captured sessions.
// It holds no persistence logic; repositories load it, mutate it and write it back whole.
type HistoryLedger struct {
	entries    []*Session
	maxEntries int
}

// NewHistoryLedger builds a ledger from persisted entries (newest first).
// Entries beyond maxEntries are dropped from the tail.
func NewHistoryLedger(entries []*Session, maxEntries int) *HistoryLedger {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxHistoryEntries
	}
	l := &HistoryLedger{
		entries:    make([]*Session, 0, len(entries)+1),
		maxEntries: maxEntries,
	}
	for _, s := range entries {
		if s != nil {
			l.entries = append(l.entries, s)
		}
	}
	l.trim()
	return l
}

// Append inserts s as the newest entry and returns whatever was evicted from the tail.
// An existing entry with the same id is replaced.
func (l *HistoryLedger) Append(s *Session) []*Session {
	if s == nil {
		return nil
	}
	l.Remove(s.ID)
	l.entries = append([]*Session{s}, l.entries...)
	return l.trim()
}

// Recent returns up to limit entries, newest first. A non-positive limit returns all entries.
func (l *HistoryLedger) Recent(limit int) []*Session {
	n := len(l.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]*Session, n)
	copy(out, l.entries[:n])
	return out
}

// Find returns the entry with the given id.
func (l *HistoryLedger) Find(id SessionID) (*Session, bool) {
	for _, s := range l.entries {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Remove deletes the entry with the given id and reports whether it existed.
func (l *HistoryLedger) Remove(id SessionID) bool {
	for i, s := range l.entries {
		if s.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns all entries, newest first.
func (l *HistoryLedger) Entries() []*Session {
	return l.Recent(0)
}

// Len returns the number of entries.
func (l *HistoryLedger) Len() int {
	return len(l.entries)
}

// MaxEntries returns the ledger capacity.
func (l *HistoryLedger) MaxEntries() int {
	return l.maxEntries
}

func (l *HistoryLedger) trim() []*Session {
	if len(l.entries) <= l.maxEntries {
		return nil
	}
	evicted := append([]*Session(nil), l.entries[l.maxEntries:]...)
	l.entries = l.entries[:l.maxEntries]
	return evicted
}
