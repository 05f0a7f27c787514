package entity

// Hit is the top ranked item a provider returned for a keyword.
type Hit struct {
	Title    string `json:"title"`
	Price    int64  `json:"price"`
	URL      string `json:"url"`
	ImageURL string `json:"imageUrl"`
}

// Lookup is the outcome of one provider call: found, absent (no credential or no
// results) or failed.
type Lookup struct {
	hit   Hit
	found bool
	err   error
}

func Found(hit Hit) Lookup {
	return Lookup{hit: hit, found: true}
}

func Absent() Lookup {
	return Lookup{}
}

func Failed(err error) Lookup {
	return Lookup{err: err}
}

// Hit returns the hit and whether there is one. A failed lookup has no hit.
func (l Lookup) Hit() (Hit, bool) {
	return l.hit, l.found
}

func (l Lookup) Err() error {
	return l.err
}

// Outcome is the lookup state as a metric/log label.
func (l Lookup) Outcome() string {
	switch {
	case l.err != nil:
		return "failed"
	case l.found:
		return "found"
	default:
		return "absent"
	}
}
