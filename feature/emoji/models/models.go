package models

import "time"

// Entry is a single parsed emoji-test line.
type Entry struct {
	// Codepoints is the ordered sequence of hexadecimal code point strings.
	Codepoints []string `json:"codepoints"`
	// Status is the qualification status (fully-qualified, unqualified,
	// component, ...). Free-form; the parser does not enumerate it.
	Status string `json:"status"`
	// Emoji is the rendered glyph text.
	Emoji string `json:"emoji"`
	// Name is the descriptive name; may be empty.
	Name string `json:"name"`
}

// Subgroup is an ordered list of entries under a subgroup header.
type Subgroup struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Group is an ordered list of subgroups under a group header.
type Group struct {
	Name      string     `json:"name"`
	Subgroups []Subgroup `json:"subgroups"`
}

// Catalog is the grouped in-memory collection of emoji entries.
// Insertion order of groups and subgroups is preserved for stable enumeration.
type Catalog struct {
	Groups []Group `json:"groups"`
}

// EnsureGroup creates the group if absent and returns its index.
// Re-declaring an existing group never clears it.
func (c *Catalog) EnsureGroup(name string) int {
	for i := range c.Groups {
		if c.Groups[i].Name == name {
			return i
		}
	}
	c.Groups = append(c.Groups, Group{Name: name})
	return len(c.Groups) - 1
}

// ResetSubgroup (re-)creates an empty entry list for (group, subgroup),
// overwriting any prior entries if the header recurs.
func (c *Catalog) ResetSubgroup(group, subgroup string) {
	gi := c.EnsureGroup(group)
	g := &c.Groups[gi]
	for i := range g.Subgroups {
		if g.Subgroups[i].Name == subgroup {
			g.Subgroups[i].Entries = nil
			return
		}
	}
	g.Subgroups = append(g.Subgroups, Subgroup{Name: subgroup})
}

// Append adds an entry to an existing (group, subgroup) pair.
// It reports whether the pair existed; entries are never attached to
// unseen section headers.
func (c *Catalog) Append(group, subgroup string, e Entry) bool {
	for i := range c.Groups {
		if c.Groups[i].Name != group {
			continue
		}
		g := &c.Groups[i]
		for j := range g.Subgroups {
			if g.Subgroups[j].Name == subgroup {
				g.Subgroups[j].Entries = append(g.Subgroups[j].Entries, e)
				return true
			}
		}
	}
	return false
}

// EntryCount returns the total number of entries across all sections.
func (c *Catalog) EntryCount() int {
	n := 0
	for _, g := range c.Groups {
		for _, sg := range g.Subgroups {
			n += len(sg.Entries)
		}
	}
	return n
}

// SubgroupCount returns the number of (group, subgroup) pairs.
func (c *Catalog) SubgroupCount() int {
	n := 0
	for _, g := range c.Groups {
		n += len(g.Subgroups)
	}
	return n
}

// Diagnostic records a skipped input line. Parsing never aborts on a bad
// line; diagnostics let callers and tests assert on what was dropped.
type Diagnostic struct {
	// Line is the 1-based line number in the input.
	Line int `json:"line"`
	// Text is the raw line as read.
	Text string `json:"text"`
	// Reason explains why the line produced no entry.
	Reason string `json:"reason"`
}

// Report summarizes one ingest of the emoji test file.
type Report struct {
	Groups        int    `json:"groups"`
	Subgroups     int    `json:"subgroups"`
	TotalEntries  int    `json:"total_entries"`
	SkippedLines  int    `json:"skipped_lines"`
	GeneratedAt   string `json:"generated_at"`
	ExecutionTime string `json:"execution_time"`
}

// NewReport builds an ingest report from a parsed catalog.
func NewReport(c *Catalog, diagnostics []Diagnostic, start time.Time) Report {
	return Report{
		Groups:        len(c.Groups),
		Subgroups:     c.SubgroupCount(),
		TotalEntries:  c.EntryCount(),
		SkippedLines:  len(diagnostics),
		GeneratedAt:   time.Now().Format(time.RFC3339),
		ExecutionTime: time.Since(start).String(),
	}
}

// Listing is the browse shape returned by store queries.
type Listing struct {
	GroupName    string `json:"group"`
	SubgroupName string `json:"subgroup"`
	Emoji        string `json:"emoji"`
	Name         string `json:"name"`
}
