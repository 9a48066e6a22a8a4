package history

// Limit is the maximum number of entries kept. Older entries fall off the tail.
const Limit = 100

// Entry is one completed calculation.
type Entry struct {
	Expression string `toml:"expression"`
	Result     string `toml:"result"`
}

// Log is the calculation history, index 0 being the newest entry. Mutators
// return the resulting list so callers can re-render without a second read.
type Log struct {
	entries []Entry
}

// New returns a log seeded with entries, truncated to Limit.
func New(entries []Entry) *Log {
	return &Log{entries: Clamp(clone(entries))}
}

// Record prepends e and drops the oldest entries beyond Limit.
func (l *Log) Record(e Entry) []Entry {
	l.entries = Clamp(append([]Entry{e}, l.entries...))
	return l.List()
}

// DeleteAt removes the entry at index. ok is false (and the log untouched)
// when index is out of range.
func (l *Log) DeleteAt(index int) (entries []Entry, ok bool) {
	if index < 0 || index >= len(l.entries) {
		return l.List(), false
	}
	l.entries = append(l.entries[:index:index], l.entries[index+1:]...)
	return l.List(), true
}

// Clear empties the log.
func (l *Log) Clear() []Entry {
	l.entries = nil
	return l.List()
}

// At returns the entry at index.
func (l *Log) At(index int) (Entry, bool) {
	if index < 0 || index >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[index], true
}

// Len returns the number of entries.
func (l *Log) Len() int { return len(l.entries) }

// List returns a copy of the log, newest first.
func (l *Log) List() []Entry {
	return clone(l.entries)
}

// Clamp truncates entries to Limit, keeping the head.
func Clamp(entries []Entry) []Entry {
	if len(entries) > Limit {
		return entries[:Limit]
	}
	return entries
}

func clone(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
