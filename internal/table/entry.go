package table

import "fmt"

// Origin locates an entry in the dataset it came from.
type Origin struct {
	Category string `msgpack:"c"`
	Index    int    `msgpack:"i"` // 0-based position in load order
}

func (o Origin) String() string {
	if o.Category == "" {
		return fmt.Sprintf("#%d", o.Index)
	}
	return fmt.Sprintf("%s#%d", o.Category, o.Index)
}

// Entry is one source→target correspondence as written in the dataset.
type Entry struct {
	Source string `msgpack:"s"`
	Target string `msgpack:"t"`
	Origin Origin `msgpack:"o"`
}

// Duplicate records a source form that was defined again; Current wins.
type Duplicate struct {
	Key      string
	Previous Entry
	Current  Entry
}

// Conflicting reports whether the two definitions disagree on the target.
func (d Duplicate) Conflicting() bool {
	return d.Previous.Target != d.Current.Target
}
