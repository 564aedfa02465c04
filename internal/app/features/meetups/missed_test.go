package meetups

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/izo-kin/gcc-fellowship-backend/internal/domain/models"
)

func TestMissedFellowships(t *testing.T) {
	a := models.Leader{ID: primitive.NewObjectID(), Fellowship: "Alpha"}
	b := models.Leader{ID: primitive.NewObjectID(), Fellowship: "Bravo"}
	c := models.Leader{ID: primitive.NewObjectID(), Fellowship: "Charlie"}
	leaders := []models.Leader{a, b, c}

	reported := map[primitive.ObjectID]struct{}{
		a.ID: {},
		c.ID: {},
	}

	missed := missedFellowships(leaders, reported)
	if len(missed) != 1 {
		t.Fatalf("got %d missed, want 1: %v", len(missed), missed)
	}
	if missed[0].LeaderID != b.ID.Hex() || missed[0].Fellowship != "Bravo" {
		t.Errorf("missed = %+v, want Bravo/%s", missed[0], b.ID.Hex())
	}
}

func TestMissedFellowships_AllReported(t *testing.T) {
	a := models.Leader{ID: primitive.NewObjectID(), Fellowship: "Alpha"}
	reported := map[primitive.ObjectID]struct{}{a.ID: {}}

	missed := missedFellowships([]models.Leader{a}, reported)
	if missed == nil {
		t.Fatal("missed is nil, want empty slice")
	}
	if len(missed) != 0 {
		t.Errorf("got %d missed, want 0", len(missed))
	}
}

func TestMissedFellowships_NoneReported(t *testing.T) {
	a := models.Leader{ID: primitive.NewObjectID(), Fellowship: "Alpha"}
	b := models.Leader{ID: primitive.NewObjectID(), Fellowship: "Bravo"}
	leaders := []models.Leader{a, b}

	missed := missedFellowships(leaders, map[primitive.ObjectID]struct{}{})
	if len(missed) != 2 {
		t.Fatalf("got %d missed, want all %d", len(missed), len(leaders))
	}
	for i, l := range leaders {
		if missed[i].LeaderID != l.ID.Hex() {
			t.Errorf("missed[%d] = %s, want directory order %s", i, missed[i].LeaderID, l.ID.Hex())
		}
	}
}

func TestMissedFellowships_Idempotent(t *testing.T) {
	a := models.Leader{ID: primitive.NewObjectID(), Fellowship: "Alpha"}
	b := models.Leader{ID: primitive.NewObjectID(), Fellowship: "Bravo"}
	leaders := []models.Leader{a, b}
	reported := map[primitive.ObjectID]struct{}{a.ID: {}}

	first := missedFellowships(leaders, reported)
	second := missedFellowships(leaders, reported)
	if len(first) != len(second) {
		t.Fatalf("repeated evaluation changed result: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d differs across evaluations: %+v vs %+v", i, first[i], second[i])
		}
	}
}
