package enum

import (
	"encoding/json"
	"testing"
)

type shade int

func TestNormalizeKinds(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"bool", true, true},
		{"int", 7, int64(7)},
		{"int8", int8(-3), int64(-3)},
		{"uint16", uint16(9), int64(9)},
		{"named int", shade(2), int64(2)},
		{"float32", float32(0.5), float64(0.5)},
		{"string", "s", "s"},
		{"string slice", []string{"a", "b"}, List{"a", "b"}},
		{"nested", []any{1, []int{2}}, List{int64(1), List{int64(2)}}},
		{"go map sorted", map[string]any{"b": 1, "a": 2}, Map{{Key: "a", Value: int64(2)}, {Key: "b", Value: int64(1)}}},
		{"ordered map", Map{{Key: "z", Value: 1}, {Key: "y", Value: 2.5}}, Map{{Key: "z", Value: int64(1)}, {Key: "y", Value: 2.5}}},
	}
	for _, tc := range cases {
		got, err := Normalize(tc.in)
		if err != nil {
			t.Fatalf("%s: normalize: %v", tc.name, err)
		}
		if !StrictEqual(got, tc.want) {
			t.Fatalf("%s: expected %#v, got %#v", tc.name, tc.want, got)
		}
	}
}

func TestNormalizeRejects(t *testing.T) {
	rejected := []any{
		func() {},
		make(chan int),
		uint64(1 << 63),
		map[int]string{1: "a"},
		Map{{Key: "a", Value: 1}, {Key: "a", Value: 2}},
		[]any{struct{}{}},
	}
	for _, v := range rejected {
		if _, err := Normalize(v); err == nil {
			t.Fatalf("expected %T to be rejected", v)
		}
	}
}

func TestStrictEqual(t *testing.T) {
	if StrictEqual(int64(1000), "1000") {
		t.Fatalf("integer must not strictly equal numeric string")
	}
	if StrictEqual(int64(1), true) || StrictEqual(int64(0), false) {
		t.Fatalf("booleans must stay distinct from 0/1")
	}
	if StrictEqual(int64(1000), float64(1000)) {
		t.Fatalf("int and float must not strictly match")
	}
	if StrictEqual(nil, "") {
		t.Fatalf("nil must not strictly equal empty string")
	}
	if StrictEqual(List{"a", "b"}, List{"b", "a"}) {
		t.Fatalf("list order is significant")
	}
	if StrictEqual(Map{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, Map{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}}) {
		t.Fatalf("map order is significant")
	}
	if !StrictEqual(Map{{Key: "a", Value: List{int64(1)}}}, Map{{Key: "a", Value: List{int64(1)}}}) {
		t.Fatalf("expected nested equality")
	}
}

func TestLooseEqual(t *testing.T) {
	pairs := [][2]any{
		{int64(1000), "1000"},
		{true, "1"},
		{false, ""},
		{nil, false},
		{float64(1000), int64(1000)},
		{0.000324, "0.000324"},
		{List{"en"}, `["en"]`},
	}
	for _, p := range pairs {
		if !LooseEqual(p[0], p[1]) {
			t.Fatalf("expected %#v ~ %#v", p[0], p[1])
		}
	}
	if LooseEqual(int64(1000), "1000.0") {
		t.Fatalf("textual comparison must not parse numbers")
	}
}

func TestRender(t *testing.T) {
	cases := map[string]any{
		"":                      nil,
		"1":                     true,
		"42":                    int64(42),
		"0.000324":              0.000324,
		"1.9E+27":               1.9e27,
		"plain":                 "plain",
		`["en","fr"]`:           List{"en", "fr"},
		`{"us":"USA","cn":"C"}`: Map{{Key: "us", Value: "USA"}, {Key: "cn", Value: "C"}},
	}
	for want, v := range cases {
		if got := render(v); got != want {
			t.Fatalf("render(%#v): expected %q, got %q", v, want, got)
		}
	}
}

func TestMapMarshalKeepsOrder(t *testing.T) {
	data, err := json.Marshal(Map{{Key: "z", Value: int64(1)}, {Key: "a", Value: List{nil}}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"z":1,"a":[null]}` {
		t.Fatalf("unexpected encoding %s", data)
	}
	m := Map{{Key: "k", Value: "v"}}
	if v, ok := m.Get("k"); !ok || v != "v" {
		t.Fatalf("expected lookup by key")
	}
	if _, ok := m.Get("missing"); ok {
		t.Fatalf("expected missing key")
	}
	if keys := m.Keys(); len(keys) != 1 || keys[0] != "k" {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestCloneValueIsDeep(t *testing.T) {
	orig := List{Map{{Key: "a", Value: List{"x"}}}}
	cp := cloneValue(orig).(List)
	cp[0].(Map)[0].Value.(List)[0] = "y"
	if orig[0].(Map)[0].Value.(List)[0] != "x" {
		t.Fatalf("expected deep copy")
	}
}

func TestDecodeJSONValueKeepsKinds(t *testing.T) {
	v, err := decodeJSONValue([]byte(`{"b":[1,2.5,"s",true,null],"a":{}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := Map{
		{Key: "b", Value: List{int64(1), 2.5, "s", true, nil}},
		{Key: "a", Value: Map{}},
	}
	if !StrictEqual(v, want) {
		t.Fatalf("expected %#v, got %#v", want, v)
	}
}
