package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/picsort/internal/scan"
)

func defaultRules() []Rule {
	return []Rule{
		NewRule("jpeg", "JPG", []string{".jpg", ".jpeg"}),
		NewRule("raw", "RAW", []string{".cr3"}),
	}
}

func file(name, ext string) scan.File {
	return scan.File{Name: name, Ext: ext, AbsPath: "/d/" + name}
}

func TestSplit_DisjointAndComplete(t *testing.T) {
	files := []scan.File{
		file("a.jpg", ".jpg"),
		file("b.JPEG", ".JPEG"),
		file("c.cr3", ".cr3"),
		file("d.CR3", ".CR3"),
		file("notes.txt", ".txt"),
		file("e.png", ".png"),
	}

	p := Split(files, defaultRules())

	assert.Equal(t, len(files), p.Total(), "category sizes must sum to input count")
	assert.Len(t, p.Files("jpeg"), 2)
	assert.Len(t, p.Files("raw"), 2)
	assert.Len(t, p.Files(Unclassified), 2)
	assert.Equal(t, 4, p.Matched())
	assert.Equal(t, []string{"jpeg", "raw", Unclassified}, p.Order)
}

func TestSplit_CaseInsensitiveExtensions(t *testing.T) {
	upper := Split([]scan.File{file("A.JPG", ".JPG")}, defaultRules())
	lower := Split([]scan.File{file("a.jpg", ".jpg")}, defaultRules())

	assert.Len(t, upper.Files("jpeg"), 1)
	assert.Len(t, lower.Files("jpeg"), 1)
}

func TestSplit_FirstRuleWinsOnOverlap(t *testing.T) {
	rules := []Rule{
		NewRule("first", "A", []string{".jpg"}),
		NewRule("second", "B", []string{".jpg"}),
	}

	p := Split([]scan.File{file("x.jpg", ".jpg")}, rules)
	assert.Len(t, p.Files("first"), 1)
	assert.Empty(t, p.Files("second"))
	assert.Equal(t, 1, p.Total())
}

func TestSplit_PreservesInputOrder(t *testing.T) {
	files := []scan.File{
		file("z.jpg", ".jpg"),
		file("a.jpg", ".jpg"),
		file("m.jpg", ".jpg"),
	}

	p := Split(files, defaultRules())
	got := p.Files("jpeg")
	require.Len(t, got, 3)
	assert.Equal(t, "z.jpg", got[0].Name)
	assert.Equal(t, "a.jpg", got[1].Name)
	assert.Equal(t, "m.jpg", got[2].Name)
}

func TestSplit_NoUnclassifiedBucketWhenAllMatch(t *testing.T) {
	p := Split([]scan.File{file("a.jpg", ".jpg")}, defaultRules())
	assert.Equal(t, []string{"jpeg", "raw"}, p.Order)
	_, ok := p.ByCategory[Unclassified]
	assert.False(t, ok)
}

func TestNewRule_NormalizesExtensions(t *testing.T) {
	r := NewRule("jpeg", "JPG", []string{"JPG", " .Jpeg "})
	assert.True(t, r.Matches(file("a.jpg", ".jpg")))
	assert.True(t, r.Matches(file("b.JPEG", ".JPEG")))
	assert.False(t, r.Matches(file("c.png", ".png")))
}
