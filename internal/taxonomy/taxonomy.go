// Package taxonomy parses the semicolon-delimited taxonomy strings emitted
// by the classifier into fixed-arity records.
package taxonomy

import "strings"

// Taxon is the 9-slot breakdown of a taxonomy string as used by the CSV
// outputs: "<uuid>;kingdom;tax1;tax2;tax3;tax4;tax5;common name" plus one
// trailing slot the label format reserves but never populates.
type Taxon struct {
	ClassUUID  string
	Kingdom    string
	Tax1       string
	Tax2       string
	Tax3       string
	Tax4       string
	Tax5       string
	CommonName string
	Reserved   string
}

// Ranks is the 7-slot breakdown used by the relational schema:
// "<uuid>;class;order;family;genus;species;common name". The label format
// disagrees with the 9-slot layout above across the two outputs; both are
// kept as-is rather than unified.
type Ranks struct {
	ClassUUID  string
	Class      string
	Order      string
	Family     string
	Genus      string
	Species    string
	CommonName string
}

// Split parses s into a Taxon. The string is split on ";" with no escaping
// or quoting; a literal semicolon inside a taxon name is indistinguishable
// from a delimiter. Missing trailing segments are left empty and segments
// past the 9th are discarded, so Split never fails.
func Split(s string) Taxon {
	parts := pad(strings.Split(s, ";"), 9)
	return Taxon{
		ClassUUID:  parts[0],
		Kingdom:    parts[1],
		Tax1:       parts[2],
		Tax2:       parts[3],
		Tax3:       parts[4],
		Tax4:       parts[5],
		Tax5:       parts[6],
		CommonName: parts[7],
		Reserved:   parts[8],
	}
}

// SplitRanks parses s into the relational schema's 7-slot Ranks record,
// with the same pad/truncate policy as Split.
func SplitRanks(s string) Ranks {
	parts := pad(strings.Split(s, ";"), 7)
	return Ranks{
		ClassUUID:  parts[0],
		Class:      parts[1],
		Order:      parts[2],
		Family:     parts[3],
		Genus:      parts[4],
		Species:    parts[5],
		CommonName: parts[6],
	}
}

// pad right-pads parts with empty strings to exactly n elements, dropping
// any extras.
func pad(parts []string, n int) []string {
	for len(parts) < n {
		parts = append(parts, "")
	}
	return parts[:n]
}
