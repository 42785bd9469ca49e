package state

import (
	"reflect"
	"testing"
)

func newTestColumn(items ...string) *Column {
	c := NewColumn("objects", "Objects")
	gen := c.BeginLoad()
	c.Apply(gen, items, false)
	return c
}

func TestFilterItemsIsCaseInsensitiveAndOrderPreserving(t *testing.T) {
	items := []string{"web-0", "Web-1", "db-0", "cache"}

	got := FilterItems(items, "WEB")
	if !reflect.DeepEqual(got, []string{"web-0", "Web-1"}) {
		t.Fatalf("unexpected matches %#v", got)
	}

	got = FilterItems(items, "  ")
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("expected blank term to match everything, got %#v", got)
	}
	if &got[0] == &items[0] {
		t.Fatal("expected blank term to return a copy")
	}

	if got := FilterItems(items, "xyz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %#v", got)
	}
}

func TestFilterItemsIsIdempotent(t *testing.T) {
	items := []string{"alpha", "beta", "alphabet"}
	once := FilterItems(items, "alpha")
	twice := FilterItems(once, "alpha")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected idempotent filtering, got %#v then %#v", once, twice)
	}
}

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	col := newTestColumn("one", "two", "three")
	col.Cursor = 2
	col.SetFilter("two")

	if !col.Filtered() {
		t.Fatal("expected filter to be active")
	}
	if col.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", col.Cursor)
	}
	if !reflect.DeepEqual(col.Items, []string{"two"}) {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", col.Items)
	}

	col.ClearFilter()
	if col.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", col.Cursor)
	}
	if col.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", col.LastCursor)
	}
	if !reflect.DeepEqual(col.Items, []string{"one", "two", "three"}) {
		t.Fatalf("expected full view restored, got %#v", col.Items)
	}
}

func TestSetFilterWithNoMatchesEmptiesView(t *testing.T) {
	col := newTestColumn("web-0", "web-1")
	col.SetFilter("xyz")

	if len(col.Items) != 0 {
		t.Fatalf("expected empty view, got %#v", col.Items)
	}
	if _, ok := col.Current(); ok {
		t.Fatal("expected no highlight on an empty view")
	}
	if len(col.Full) != 2 {
		t.Fatalf("expected backing list untouched, got %#v", col.Full)
	}

	col.ClearFilter()
	if !reflect.DeepEqual(col.Items, []string{"web-0", "web-1"}) {
		t.Fatalf("expected view restored, got %#v", col.Items)
	}
}

func TestFilterSurvivesRefresh(t *testing.T) {
	col := newTestColumn("web-0", "web-1", "db-0")
	col.SetFilter("web")

	gen := col.BeginLoad()
	if !col.Apply(gen, []string{"web-0", "web-1", "web-2", "db-0"}, true) {
		t.Fatal("expected apply to take effect")
	}
	if col.Filter != "web" {
		t.Fatalf("expected filter term preserved, got %q", col.Filter)
	}
	if !reflect.DeepEqual(col.Items, []string{"web-0", "web-1", "web-2"}) {
		t.Fatalf("expected refreshed items filtered, got %#v", col.Items)
	}
}

func TestClearFilterAfterShrinkingRefreshDefaultsToTop(t *testing.T) {
	col := newTestColumn("a", "b", "c", "d", "e")
	col.Cursor = 4
	col.SetFilter("zzz")

	gen := col.BeginLoad()
	col.Apply(gen, []string{"a", "b"}, true)

	col.ClearFilter()
	if col.Cursor != 0 {
		t.Fatalf("expected highlight at top after remembered item vanished, got %d", col.Cursor)
	}
}

func TestClearFilterFollowsHighlightedItemAfterListShift(t *testing.T) {
	col := newTestColumn("b", "c", "d")
	col.Cursor = 1 // "c"
	col.SetFilter("zzz")

	gen := col.BeginLoad()
	col.Apply(gen, []string{"a", "b", "c", "d"}, true)

	col.ClearFilter()
	if name, _ := col.Current(); name != "c" {
		t.Fatalf("expected highlight back on %q, got %q", "c", name)
	}
	if col.Cursor != 2 {
		t.Fatalf("expected cursor 2 after head insert, got %d", col.Cursor)
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []string{"Pods", "Services", "Deployments"}

	if idx := BestMatchIndex(items, "Services"); idx != 1 {
		t.Fatalf("expected exact match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "dep"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "vice"); idx != 1 {
		t.Fatalf("expected substring match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "dplymnts"); idx != 2 {
		t.Fatalf("expected fuzzy match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, ""); idx != 0 {
		t.Fatalf("expected empty query to pick first item, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}
