package game

import "testing"

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys([]string{"forward", " Jump", "CLICK"})
	if err != nil {
		t.Fatal(err)
	}
	exp := KeyInput{Forward: true, Jump: true, Click: true}
	if keys != exp {
		t.Fatalf("expected keys to be %+v; got %+v", exp, keys)
	}

	expErr := "game: unknown key 'crouch'"
	if _, err = ParseKeys([]string{"left", "crouch"}); err == nil || err.Error() != expErr {
		t.Fatalf("expected to get: %s; got %v", expErr, err)
	}
}

func TestEventsMerge(t *testing.T) {
	ev := Events{DoorBlocked: true}
	ev.Merge(Events{Teleported: true})
	ev.Merge(Events{})

	exp := Events{DoorBlocked: true, Teleported: true}
	if ev != exp {
		t.Fatalf("expected merged events to be %+v; got %+v", exp, ev)
	}
}
