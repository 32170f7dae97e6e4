package hierarchy

import (
	"testing"

	"district-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	rows := []Row{
		{ID: "100", Name: "Şehirler", Parent: "ana"},
		{ID: "103", Name: "Ankara", Parent: "100"},
		{ID: "121", Name: "Gölbaşı", Parent: "103"},
	}

	got := Resolve(rows, DefaultRootID)
	assert.Equal(t, reconcile.Dataset{"ankara": reconcile.NewSet("gölbaşı")}, got)
}

func TestResolve_IstanbulMerge(t *testing.T) {
	rows := []Row{
		{ID: "100", Name: "Şehirler", Parent: "ana"},
		{ID: "101", Name: "İstanbul (Avrupa)", Parent: "100"},
		{ID: "102", Name: "Istanbul (Anadolu)", Parent: "100"},
		{ID: "200", Name: "Beşiktaş", Parent: "101"},
		{ID: "201", Name: "Kadıköy", Parent: "102"},
	}

	got := Resolve(rows, DefaultRootID)
	assert.Equal(t, reconcile.Dataset{"istanbul": reconcile.NewSet("beşiktaş", "kadıköy")}, got)
}

func TestResolve_Drops(t *testing.T) {
	rows := []Row{
		{ID: "103", Name: "Ankara", Parent: "100"},
		{ID: "104", Name: "Bolu", Parent: "100"},
		{ID: "121", Name: "Gölbaşı", Parent: "103"},
		{ID: "500", Name: "Yetim", Parent: "999"},
		{ID: "501", Name: "Köy", Parent: "121"},
	}

	got := Resolve(rows, DefaultRootID)

	// Bolu has no district, the orphan and the grandchild are dropped.
	assert.Equal(t, reconcile.Dataset{"ankara": reconcile.NewSet("gölbaşı")}, got)
}

func TestResolve_LastRowWins(t *testing.T) {
	rows := []Row{
		{ID: "103", Name: "Ankara", Parent: "100"},
		{ID: "121", Name: "Golbasi", Parent: "103"},
		{ID: "121", Name: "Gölbaşı", Parent: "103"},
	}

	got := Resolve(rows, DefaultRootID)
	assert.Equal(t, reconcile.NewSet("gölbaşı"), got["ankara"])
}

func TestResolve_CustomRoot(t *testing.T) {
	rows := []Row{
		{ID: "6", Name: "ANKARA", Parent: "0"},
		{ID: "60", Name: "ÇANKAYA", Parent: "6"},
	}

	assert.Empty(t, Resolve(rows, DefaultRootID))
	assert.Equal(t, reconcile.Dataset{"ankara": reconcile.NewSet("çankaya")}, Resolve(rows, "0"))
}
