package seq

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func identity(v int) int { return v }

func TestMergeSort(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		want  []int
	}{
		{"empty", nil, []int{}},
		{"single", []int{4}, []int{4}},
		{"even length", []int{4, 1, 3, 2}, []int{1, 2, 3, 4}},
		{"odd length", []int{5, 3, 9, 1, 7}, []int{1, 3, 5, 7, 9}},
		{"duplicates", []int{2, 1, 2, 1}, []int{1, 1, 2, 2}},
		{"already sorted", []int{1, 2, 3}, []int{1, 2, 3}},
		{"reversed", []int{3, 2, 1}, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeSort(tt.items, identity)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MergeSort mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeSort_DoesNotModifyInput(t *testing.T) {
	items := []int{3, 1, 2}
	MergeSort(items, identity)
	if diff := cmp.Diff([]int{3, 1, 2}, items); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestMergeSort_ByKey(t *testing.T) {
	type row struct {
		Name string
		Size int
	}
	items := []row{{"c", 30}, {"a", 10}, {"b", 20}}

	got := MergeSort(items, func(r row) int { return r.Size })
	want := []row{{"a", 10}, {"b", 20}, {"c", 30}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeSort mismatch (-want +got):\n%s", diff)
	}
}
