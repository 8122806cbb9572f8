package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFullString(t *testing.T) {
	tax := Split("A;B;C;D;E;F;G;H;I")

	assert.Equal(t, "A", tax.ClassUUID)
	assert.Equal(t, "B", tax.Kingdom)
	assert.Equal(t, "C", tax.Tax1)
	assert.Equal(t, "D", tax.Tax2)
	assert.Equal(t, "E", tax.Tax3)
	assert.Equal(t, "F", tax.Tax4)
	assert.Equal(t, "G", tax.Tax5)
	assert.Equal(t, "H", tax.CommonName)
	assert.Equal(t, "I", tax.Reserved)
}

func TestSplitPadsShortStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Taxon
	}{
		{
			name:  "uuid only",
			input: "b1352069-a39c-4a84-a949-60044271c0c1",
			want:  Taxon{ClassUUID: "b1352069-a39c-4a84-a949-60044271c0c1"},
		},
		{
			name:  "seven segments",
			input: "uuid;mammalia;rodentia;sciuridae;sciurus;vulgaris;red squirrel",
			want: Taxon{
				ClassUUID:  "uuid",
				Kingdom:    "mammalia",
				Tax1:       "rodentia",
				Tax2:       "sciuridae",
				Tax3:       "sciurus",
				Tax4:       "vulgaris",
				Tax5:       "red squirrel",
			},
		},
		{
			name:  "trailing delimiter keeps empty segment",
			input: "uuid;",
			want:  Taxon{ClassUUID: "uuid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.input))
		})
	}
}

func TestSplitDiscardsExtraSegments(t *testing.T) {
	tax := Split("A;B;C;D;E;F;G;H;I;J;K")

	assert.Equal(t, "I", tax.Reserved)
	assert.Equal(t, "H", tax.CommonName)
}

func TestSplitSegmentCountProperty(t *testing.T) {
	// Fields 1..min(k,9) must equal the split segments, the rest empty,
	// for every segment count k.
	segments := []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11"}

	for k := 1; k <= len(segments); k++ {
		tax := Split(strings.Join(segments[:k], ";"))
		got := []string{
			tax.ClassUUID, tax.Kingdom, tax.Tax1, tax.Tax2, tax.Tax3,
			tax.Tax4, tax.Tax5, tax.CommonName, tax.Reserved,
		}
		for i := range got {
			if i < k {
				assert.Equal(t, segments[i], got[i], "k=%d field %d", k, i)
			} else {
				assert.Empty(t, got[i], "k=%d field %d", k, i)
			}
		}
	}
}

func TestSplitRanks(t *testing.T) {
	r := SplitRanks("uuid;mammalia;carnivora;felidae;lynx;lynx;eurasian lynx")

	assert.Equal(t, Ranks{
		ClassUUID:  "uuid",
		Class:      "mammalia",
		Order:      "carnivora",
		Family:     "felidae",
		Genus:      "lynx",
		Species:    "lynx",
		CommonName: "eurasian lynx",
	}, r)
}

func TestSplitRanksPadsAndTruncates(t *testing.T) {
	assert.Equal(t, Ranks{ClassUUID: "uuid", Class: "aves"}, SplitRanks("uuid;aves"))

	r := SplitRanks("a;b;c;d;e;f;g;h;i")
	assert.Equal(t, "g", r.CommonName)
}
