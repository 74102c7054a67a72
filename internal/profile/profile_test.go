package profile

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/smileynet/agenda/internal/contact"
	"github.com/smileynet/agenda/internal/seq"
)

// withContacts builds a profile holding one contact per phone, named c1, c2, ...
func withContacts(username string, phones ...string) *Profile {
	p := New(username, "")
	for i, phone := range phones {
		p.AppendContact(contact.New(fmt.Sprintf("c%d", i+1), phone, 20+i, "Madrid", ""))
	}
	return p
}

func phones(p *Profile) []string {
	out := make([]string, 0, p.ContactCount())
	for i := 0; i < p.ContactCount(); i++ {
		c, err := p.ContactAt(i)
		if err != nil {
			panic(err)
		}
		out = append(out, c.Phone())
	}
	return out
}

func TestNew_Empty(t *testing.T) {
	p := New("ana", "Le gusta la música y viajar")
	if p.Username() != "ana" {
		t.Errorf("Username() = %q, want %q", p.Username(), "ana")
	}
	if p.Bio() != "Le gusta la música y viajar" {
		t.Errorf("Bio() = %q, want bio", p.Bio())
	}
	if p.ContactCount() != 0 {
		t.Errorf("ContactCount() = %d, want 0", p.ContactCount())
	}
}

func TestAppendContact_ThenContactAt(t *testing.T) {
	p := New("ana", "")
	c := contact.New("Carlos", "111", 25, "Madrid", "")

	p.AppendContact(c)

	got, err := p.ContactAt(0)
	if err != nil {
		t.Fatalf("ContactAt(0) error = %v", err)
	}
	if got != c {
		t.Error("ContactAt(0) should return the appended contact")
	}
	if p.ContactCount() != 1 {
		t.Errorf("ContactCount() = %d, want 1", p.ContactCount())
	}
}

func TestContactAt_OutOfRange(t *testing.T) {
	p := withContacts("ana", "1")
	c, err := p.ContactAt(1)
	if !errors.Is(err, seq.ErrOutOfRange) {
		t.Errorf("ContactAt(1) error = %v, want seq.ErrOutOfRange", err)
	}
	if c != nil {
		t.Errorf("ContactAt(1) = %v, want nil", c)
	}
}

func TestAppendContact_AllowsDuplicatePhone(t *testing.T) {
	p := withContacts("ana", "555")
	p.AppendContact(contact.New("Again", "555", 30, "", ""))
	if p.ContactCount() != 2 {
		t.Errorf("ContactCount() = %d, want 2 (append does not deduplicate)", p.ContactCount())
	}
}

func TestHasPhone(t *testing.T) {
	p := withContacts("ana", "111", "222", "333")

	tests := []struct {
		phone string
		want  bool
	}{
		{"111", true},
		{"333", true},
		{"444", false},
		{"11", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := p.HasPhone(tt.phone); got != tt.want {
			t.Errorf("HasPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestHasPhone_AddThenDelete(t *testing.T) {
	// Given a profile without the phone
	p := withContacts("ana", "111", "222")
	if p.HasPhone("999") {
		t.Fatal("HasPhone(999) = true before adding")
	}

	// When a contact with that phone is added
	p.AppendContact(contact.New("New", "999", 40, "", ""))

	// Then it is found
	if !p.HasPhone("999") {
		t.Fatal("HasPhone(999) = false after adding")
	}

	// And deleting it makes it disappear again
	if !p.DeleteContactAt(2) {
		t.Fatal("DeleteContactAt(2) = false, want true")
	}
	if p.HasPhone("999") {
		t.Error("HasPhone(999) = true after deleting")
	}
}

func TestDeleteContactAt(t *testing.T) {
	p := withContacts("ana", "1", "2", "3", "4")

	if !p.DeleteContactAt(1) {
		t.Fatal("DeleteContactAt(1) = false, want true")
	}

	if diff := cmp.Diff([]string{"1", "3", "4"}, phones(p)); diff != "" {
		t.Errorf("phones mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteContactAt_OutOfRangeIgnored(t *testing.T) {
	p := withContacts("ana", "1", "2")
	for _, pos := range []int{-1, 2, 50} {
		if p.DeleteContactAt(pos) {
			t.Errorf("DeleteContactAt(%d) = true, want false", pos)
		}
	}
	if p.ContactCount() != 2 {
		t.Errorf("ContactCount() = %d, want 2", p.ContactCount())
	}
	if New("empty", "").DeleteContactAt(0) {
		t.Error("DeleteContactAt(0) on an empty profile = true, want false")
	}
}

func TestImportFrom_NoOverlap(t *testing.T) {
	// Given two profiles with disjoint phones
	a := withContacts("ana", "1", "2", "3", "4", "5")
	b := withContacts("borja", "6", "7", "8", "9", "10")

	// When a is imported into b
	got := b.ImportFrom(a)

	// Then every contact is copied
	if diff := cmp.Diff(ImportResult{Imported: 5, Skipped: 0}, got); diff != "" {
		t.Errorf("ImportFrom() mismatch (-want +got):\n%s", diff)
	}
	if b.ContactCount() != 10 {
		t.Errorf("borja ContactCount() = %d, want 10", b.ContactCount())
	}
	if a.ContactCount() != 5 {
		t.Errorf("ana ContactCount() = %d, want 5 (source untouched)", a.ContactCount())
	}

	// And running it again skips all of them
	again := b.ImportFrom(a)
	if diff := cmp.Diff(ImportResult{Imported: 0, Skipped: 5}, again); diff != "" {
		t.Errorf("second ImportFrom() mismatch (-want +got):\n%s", diff)
	}
	if b.ContactCount() != 10 {
		t.Errorf("borja ContactCount() = %d after re-import, want 10", b.ContactCount())
	}
}

func TestImportFrom_PartialOverlap(t *testing.T) {
	src := withContacts("src", "1", "2", "3")
	dst := withContacts("dst", "2", "9")

	got := dst.ImportFrom(src)

	if diff := cmp.Diff(ImportResult{Imported: 2, Skipped: 1}, got); diff != "" {
		t.Errorf("ImportFrom() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"2", "9", "1", "3"}, phones(dst)); diff != "" {
		t.Errorf("dst phones mismatch (-want +got):\n%s", diff)
	}
}

func TestImportFrom_DuplicateInsideSource(t *testing.T) {
	// Given a source that repeats a phone the destination lacks
	src := withContacts("src", "555", "555", "777")
	dst := withContacts("dst", "111")

	// When imported
	got := dst.ImportFrom(src)

	// Then the second copy is checked against the already-updated destination
	if diff := cmp.Diff(ImportResult{Imported: 2, Skipped: 1}, got); diff != "" {
		t.Errorf("ImportFrom() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"111", "555", "777"}, phones(dst)); diff != "" {
		t.Errorf("dst phones mismatch (-want +got):\n%s", diff)
	}
}

func TestImportFrom_CopiesAreIndependent(t *testing.T) {
	src := withContacts("src", "1")
	dst := New("dst", "")

	dst.ImportFrom(src)

	orig, _ := src.ContactAt(0)
	cp, _ := dst.ContactAt(0)
	if cp == orig {
		t.Fatal("imported contact shares the source pointer")
	}
	if cp.ID() == orig.ID() {
		t.Errorf("imported contact kept ID %q, want a new one", cp.ID())
	}
	if cp.Name() != orig.Name() || cp.Age() != orig.Age() || cp.City() != orig.City() {
		t.Errorf("imported contact fields differ: got %+v, want values of %+v", *cp, *orig)
	}

	cp.SetName("changed")
	if orig.Name() == "changed" {
		t.Error("editing the imported copy changed the source contact")
	}
}

func TestImportFrom_NilAndSelf(t *testing.T) {
	p := withContacts("ana", "1", "2")

	if got := p.ImportFrom(nil); got != (ImportResult{}) {
		t.Errorf("ImportFrom(nil) = %+v, want zero", got)
	}

	got := p.ImportFrom(p)
	if diff := cmp.Diff(ImportResult{Imported: 0, Skipped: 2}, got); diff != "" {
		t.Errorf("self ImportFrom() mismatch (-want +got):\n%s", diff)
	}
	if p.ContactCount() != 2 {
		t.Errorf("ContactCount() = %d after self import, want 2", p.ContactCount())
	}
}

func TestExport(t *testing.T) {
	src := withContacts("ana", "1", "2")
	dst := withContacts("carla", "2")

	got := Export(src, dst)

	if diff := cmp.Diff(ImportResult{Imported: 1, Skipped: 1}, got); diff != "" {
		t.Errorf("Export() mismatch (-want +got):\n%s", diff)
	}
	if dst.ContactCount() != 2 {
		t.Errorf("dst ContactCount() = %d, want 2", dst.ContactCount())
	}
	if got := Export(nil, dst); got != (ImportResult{}) {
		t.Errorf("Export(nil, dst) = %+v, want zero", got)
	}
	if got := Export(src, nil); got != (ImportResult{}) {
		t.Errorf("Export(src, nil) = %+v, want zero", got)
	}
}

func TestDetectDuplicates(t *testing.T) {
	tests := []struct {
		name   string
		phones []string
		want   []DuplicatePair
	}{
		{
			name:   "one shared phone among unique ones",
			phones: []string{"555", "111", "555", "222", "333"},
			want:   []DuplicatePair{{First: "c1", Second: "c3", Phone: "555"}},
		},
		{
			name:   "all unique",
			phones: []string{"1", "2", "3", "4", "5"},
			want:   nil,
		},
		{
			name:   "three-way match reports every pair",
			phones: []string{"7", "7", "7"},
			want: []DuplicatePair{
				{First: "c1", Second: "c2", Phone: "7"},
				{First: "c1", Second: "c3", Phone: "7"},
				{First: "c2", Second: "c3", Phone: "7"},
			},
		},
		{
			name:   "empty profile",
			phones: nil,
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := withContacts("ana", tt.phones...)

			got := p.DetectDuplicates()

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DetectDuplicates() mismatch (-want +got):\n%s", diff)
			}
			if p.ContactCount() != len(tt.phones) {
				t.Errorf("ContactCount() = %d, want %d (detection must not modify)", p.ContactCount(), len(tt.phones))
			}
		})
	}
}

func TestRelease(t *testing.T) {
	p := withContacts("ana", "1", "2", "3")
	p.Release()
	if p.ContactCount() != 0 {
		t.Errorf("ContactCount() = %d after Release, want 0", p.ContactCount())
	}
	// Still usable afterwards.
	p.AppendContact(contact.New("x", "9", 1, "", ""))
	if !p.HasPhone("9") {
		t.Error("profile unusable after Release")
	}
}

func TestImportFrom_LogsSummary(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	src := withContacts("ana", "1", "2")
	dst := New("borja", "", WithLogger(zap.New(core)))
	dst.AppendContact(contact.New("x", "2", 1, "", ""))

	dst.ImportFrom(src)

	entries := recorded.FilterMessage("contacts imported").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 import log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["from"] != "ana" || fields["to"] != "borja" {
		t.Errorf("from/to = %v/%v, want ana/borja", fields["from"], fields["to"])
	}
	if fields["imported"] != int64(1) || fields["skipped"] != int64(1) {
		t.Errorf("imported/skipped = %v/%v, want 1/1", fields["imported"], fields["skipped"])
	}
}

func TestDeleteContactAt_LogsAtDebug(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	p := New("ana", "", WithLogger(zap.New(core)))
	p.AppendContact(contact.New("x", "1", 1, "", ""))

	p.DeleteContactAt(0)

	entries := recorded.FilterMessage("contact deleted").All()
	if len(entries) != 1 {
		t.Fatalf("delete log entries = %d, want 1", len(entries))
	}
	n := 0
	for _, f := range entries[0].Context {
		if f.Key == "profile" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("profile field appears %d times, want 1", n)
	}
}
