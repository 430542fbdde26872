package history

import (
	"fmt"
	"testing"

	"github.com/subrinSheikh/Medical-Language-System/internal/message"
)

func TestPushInsertsAtHead(t *testing.T) {
	log := []message.Record{{ID: "old"}}
	log = Push(log, message.Record{ID: "new"})

	if len(log) != 2 {
		t.Fatalf("got %d records, want 2", len(log))
	}
	if log[0].ID != "new" || log[1].ID != "old" {
		t.Errorf("order = [%s %s], want [new old]", log[0].ID, log[1].ID)
	}
}

func TestPushNeverExceedsCap(t *testing.T) {
	var log []message.Record
	for i := 0; i < Cap*3; i++ {
		log = Push(log, message.Record{ID: fmt.Sprintf("rec-%d", i)})
		if len(log) > Cap {
			t.Fatalf("log grew to %d records after %d pushes, cap is %d", len(log), i+1, Cap)
		}
	}
	if len(log) != Cap {
		t.Errorf("got %d records, want %d", len(log), Cap)
	}
	if log[0].ID != fmt.Sprintf("rec-%d", Cap*3-1) {
		t.Errorf("head = %q, want the most recent push", log[0].ID)
	}
}

func TestPushDoesNotMutateInput(t *testing.T) {
	orig := []message.Record{{ID: "a"}, {ID: "b"}}
	_ = Push(orig, message.Record{ID: "c"})
	if orig[0].ID != "a" || orig[1].ID != "b" {
		t.Error("Push must not mutate the input slice")
	}
}
