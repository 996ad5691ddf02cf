package scoring

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAnswerJSONRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   Answer
		json string
	}{
		{"single", Single("Sa parke"), `"Sa parke"`},
		{"set", Multi("Solid", "Liquid", "Gas"), `["Solid","Liquid","Gas"]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tc.json {
				t.Errorf("marshal = %s, want %s", b, tc.json)
			}
			var out Answer
			if err := json.Unmarshal(b, &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !reflect.DeepEqual(tc.in, out) {
				t.Errorf("round-trip = %+v, want %+v", out, tc.in)
			}
		})
	}
}

func TestAnswerUnmarshalRejectsOtherShapes(t *testing.T) {
	var a Answer
	if err := json.Unmarshal([]byte(`{"oops":1}`), &a); err == nil {
		t.Error("expected error for object-shaped answer")
	}
}

func TestSetsEqual(t *testing.T) {
	cases := []struct {
		got, want []string
		equal     bool
	}{
		{[]string{"a", "b"}, []string{"b", "a"}, true},
		{[]string{"a"}, []string{"a", "b"}, false},
		{[]string{"a", "a"}, []string{"a", "b"}, false},
		{nil, nil, true},
	}
	for _, tc := range cases {
		if got := setsEqual(tc.got, tc.want); got != tc.equal {
			t.Errorf("setsEqual(%v, %v) = %v, want %v", tc.got, tc.want, got, tc.equal)
		}
	}
}
