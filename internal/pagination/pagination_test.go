package pagination

import "testing"

func TestPaginate_FirstPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	p := Paginate(items, 1, 2)
	if len(p.Items) != 2 || p.Items[0] != 1 || p.Items[1] != 2 {
		t.Fatalf("items = %v, want [1 2]", p.Items)
	}
	if !p.HasNext || p.HasPrev {
		t.Fatalf("hasNext=%v hasPrev=%v, want true/false", p.HasNext, p.HasPrev)
	}
	if p.Total != 5 {
		t.Fatalf("total = %d, want 5", p.Total)
	}
}

func TestPaginate_LastPartialPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	p := Paginate(items, 3, 2)
	if len(p.Items) != 1 || p.Items[0] != 5 {
		t.Fatalf("items = %v, want [5]", p.Items)
	}
	if p.HasNext || !p.HasPrev {
		t.Fatalf("hasNext=%v hasPrev=%v, want false/true", p.HasNext, p.HasPrev)
	}
}

func TestPaginate_PageBeyondRange(t *testing.T) {
	items := []int{1, 2, 3}

	p := Paginate(items, 10, 2)
	if len(p.Items) != 0 {
		t.Fatalf("items = %v, want empty", p.Items)
	}
	if p.HasNext {
		t.Fatalf("hasNext = true, want false")
	}
}

func TestPaginate_DefaultsOnBadInput(t *testing.T) {
	items := make([]int, 25)

	p := Paginate(items, 0, 0)
	if p.Page != 1 || p.PageSize != 20 {
		t.Fatalf("page=%d size=%d, want 1/20", p.Page, p.PageSize)
	}
	if len(p.Items) != 20 {
		t.Fatalf("items len = %d, want 20", len(p.Items))
	}
}

func TestPaginate_EmptyInput(t *testing.T) {
	p := Paginate([]string{}, 1, 10)
	if len(p.Items) != 0 || p.Total != 0 || p.HasNext || p.HasPrev {
		t.Fatalf("unexpected page for empty input: %+v", p)
	}
}
