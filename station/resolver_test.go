package station

import "testing"

// testDirectory mirrors the interesting shapes in the real dataset:
// a city with a same-named station plus satellites, a city with several
// stations none of which shares its name, and a single-station
// pseudo-city produced by the blank-city fallback.
func testDirectory() *Directory {
	return NewDirectory([]Record{
		{Code: "SHH", Name: "上海", City: "上海"},
		{Code: "AOH", Name: "上海虹桥", City: "上海"},
		{Code: "SNH", Name: "上海南", City: "上海"},
		{Code: "SZH", Name: "苏州", City: "苏州"},
		{Code: "HGH", Name: "杭州东", City: "杭州"},
		{Code: "HWH", Name: "杭州西", City: "杭州"},
		{Code: "AIH", Name: "阳澄湖", City: "阳澄湖"},
	})
}

func TestResolveOrdering(t *testing.T) {
	dir := testDirectory()

	tests := []struct {
		name     string
		query    string
		wantCode string
		wantMiss bool
	}{
		{name: "exact station name", query: "上海虹桥", wantCode: "AOH"},
		{name: "city with primary station", query: "上海", wantCode: "SHH"},
		{name: "city without primary uses source order", query: "杭州", wantCode: "HGH"},
		{name: "city suffix stripped", query: "杭州市", wantCode: "HGH"},
		{name: "station suffix stripped", query: "苏州站", wantCode: "SZH"},
		{name: "pseudo city resolves like a real one", query: "阳澄湖", wantCode: "AIH"},
		{name: "unknown name", query: "不存在", wantMiss: true},
		{name: "suffix strip still unknown", query: "不存在市", wantMiss: true},
		{name: "empty query", query: "", wantMiss: true},
		{name: "whitespace only", query: "   ", wantMiss: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := dir.Resolve(tt.query)
			if tt.wantMiss {
				if ok {
					t.Fatalf("expected a miss, got %+v", r)
				}
				return
			}
			if !ok {
				t.Fatalf("expected %s, got a miss", tt.wantCode)
			}
			if r.Code != tt.wantCode {
				t.Errorf("expected %s, got %s", tt.wantCode, r.Code)
			}
		})
	}
}

func TestResolveExactNameBeatsCity(t *testing.T) {
	// a station named exactly like another city must win over that city's
	// station list
	dir := NewDirectory([]Record{
		{Code: "AAA", Name: "丙城", City: "甲城"},
		{Code: "BBB", Name: "丙城北", City: "丙城"},
	})
	r, ok := dir.Resolve("丙城")
	if !ok || r.Code != "AAA" {
		t.Fatalf("exact station name must win, got %+v ok=%v", r, ok)
	}
}

func TestResolveDeterministicAcrossCalls(t *testing.T) {
	dir := testDirectory()
	first, ok := dir.Resolve("杭州")
	if !ok {
		t.Fatal("expected a match")
	}
	for i := 0; i < 10; i++ {
		r, ok := dir.Resolve("杭州")
		if !ok || r.Code != first.Code {
			t.Fatalf("resolution not deterministic: %+v vs %+v", first, r)
		}
	}
}
