package shape

import "testing"

func TestDimSizeCollapsesBaseline(t *testing.T) {
	d := NewDim(30, 12, 4)
	if d.Size() != Sz(30, 16) {
		t.Errorf("Size = %v", d.Size())
	}
	if d.VDim() != NewVDim(12, 4) {
		t.Errorf("VDim = %v", d.VDim())
	}
}

func TestVDimPartialOrder(t *testing.T) {
	line := NewVDim(20, 4)
	word := NewVDim(16, 4)
	tall := NewVDim(25, 2)

	if !word.Less(line) {
		t.Error("word should fit into line")
	}
	if line.Less(word) {
		t.Error("line should not fit into word")
	}
	// Not totally ordered: neither fits into the other.
	if tall.Less(line) || line.Less(tall) {
		t.Error("tall and line should be incomparable")
	}
}

func TestVDimMinMaxAndRange(t *testing.T) {
	a := NewVDim(20, 4)
	b := NewVDim(16, 6)

	if a.Min(b) != NewVDim(16, 4) {
		t.Errorf("Min = %v", a.Min(b))
	}
	if a.Max(b) != NewVDim(20, 6) {
		t.Errorf("Max = %v", a.Max(b))
	}
	if a.VRange(100) != Rg(80, 104) {
		t.Errorf("VRange = %v", a.VRange(100))
	}
}
