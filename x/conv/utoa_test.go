package conv

import "testing"

func TestAppendUint8(t *testing.T) {
	type C struct {
		v    uint8
		want string
	}
	for _, c := range []C{
		{0, "0"},
		{7, "7"},
		{10, "10"},
		{99, "99"},
		{100, "100"},
		{255, "255"},
	} {
		if got := string(AppendUint8(nil, c.v)); got != c.want {
			t.Fatalf("AppendUint8(%d) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestAppendUint8Extends(t *testing.T) {
	got := AppendUint8([]byte("lvl="), 42)
	if string(got) != "lvl=42" {
		t.Fatalf("got %q", got)
	}
}

func TestAppendUint32(t *testing.T) {
	type C struct {
		v    uint32
		want string
	}
	for _, c := range []C{
		{0, "0"},
		{9, "9"},
		{1000, "1000"},
		{4294967295, "4294967295"},
	} {
		if got := string(AppendUint32(nil, c.v)); got != c.want {
			t.Fatalf("AppendUint32(%d) = %q, want %q", c.v, got, c.want)
		}
	}
}
