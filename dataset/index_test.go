package dataset

import (
	"errors"
	"testing"
)

func testDataset() Dataset {
	return Dataset{
		{Name: "m1", File: "m1.mp4", MOS: 3.0, Category: "train"},
		{Name: "m2", File: "m2.mp4", MOS: 4.0, Category: "test"},
		{Name: "m3", File: "m3.mp4", MOS: 2.5, Category: "train"},
		{Name: "m4", File: "m4.mp4", MOS: 5.0, Category: "test"},
	}
}

func TestBuildIndex(t *testing.T) {
	idx, err := BuildIndex(testDataset())
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	if idx.Size() != 4 {
		t.Fatalf("expected size 4, got %d", idx.Size())
	}
	for i, name := range []string{"m1", "m2", "m3", "m4"} {
		p, ok := idx.Position(name)
		if !ok || p != i {
			t.Errorf("Position(%q) = %d,%v; want %d,true", name, p, ok, i)
		}
	}
	if _, ok := idx.Position("nope"); ok {
		t.Error("Position should report unknown names")
	}

	wantLabels := []float64{3.0, 4.0, 2.5, 5.0}
	for i, w := range wantLabels {
		if idx.Labels[i] != w {
			t.Errorf("Labels[%d] = %v, want %v", i, idx.Labels[i], w)
		}
	}
	wantTraining := []bool{true, false, true, false}
	for i, w := range wantTraining {
		if idx.IsTraining[i] != w {
			t.Errorf("IsTraining[%d] = %v, want %v", i, idx.IsTraining[i], w)
		}
	}
	if idx.TrainCount() != 2 || idx.VerifyCount() != 2 {
		t.Errorf("counts = %d/%d, want 2/2", idx.TrainCount(), idx.VerifyCount())
	}
}

func TestBuildIndex_DuplicateName(t *testing.T) {
	ds := testDataset()
	ds = append(ds, Media{Name: "m2", File: "dup.mp4", MOS: 1.0, Category: "train"})

	_, err := BuildIndex(ds)
	if !errors.Is(err, ErrDuplicateMediaName) {
		t.Fatalf("expected ErrDuplicateMediaName, got %v", err)
	}
}

func TestBuildIndex_RequiresExactlyOneDataset(t *testing.T) {
	if _, err := BuildIndex(); !errors.Is(err, ErrUnsupportedInput) {
		t.Errorf("zero datasets: expected ErrUnsupportedInput, got %v", err)
	}
	if _, err := BuildIndex(testDataset(), testDataset()); !errors.Is(err, ErrUnsupportedInput) {
		t.Errorf("two datasets: expected ErrUnsupportedInput, got %v", err)
	}
}
