package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"district-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, r *reconcile.Report) []string {
	t.Helper()
	var buf bytes.Buffer
	sink := NewSink(&buf)
	Render(sink, r, "Güncel Liste")
	require.NoError(t, sink.Err())
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestSink_MirrorsLines(t *testing.T) {
	var console, file bytes.Buffer
	sink := NewSink(&console, &file)

	sink.Line("first %d", 1)
	sink.Line("second")

	assert.Equal(t, "first 1\nsecond\n", console.String())
	assert.Equal(t, console.String(), file.String())
	assert.NoError(t, sink.Err())
}

type brokenWriter struct{ calls int }

func (b *brokenWriter) Write(p []byte) (int, error) {
	b.calls++
	return 0, errors.New("disk full")
}

func TestSink_KeepsFirstError(t *testing.T) {
	w := &brokenWriter{}
	sink := NewSink(w)

	sink.Line("a")
	sink.Line("b")

	assert.EqualError(t, sink.Err(), "disk full")
	assert.Equal(t, 1, w.calls)
}

func TestRender_PerfectSync(t *testing.T) {
	gold := reconcile.Dataset{"adana": reconcile.NewSet("aladağ")}
	r := reconcile.Compare("admin-sehir", gold, gold)

	lines := render(t, r)

	assert.Equal(t, []string{
		"",
		"====================",
		"Analyzing admin-sehir...",
		"====================",
		"admin-sehir is perfectly synced with Güncel Liste.",
	}, lines)
}

func TestRender_Discrepancies(t *testing.T) {
	gold := reconcile.Dataset{
		"adana":    reconcile.NewSet("aladağ", "çukurova"),
		"istanbul": reconcile.NewSet("adalar"),
		"izmir":    reconcile.NewSet("karşıyaka", "bayraklı", "buca"),
		"van":      reconcile.NewSet("erciş"),
	}
	target := reconcile.Dataset{
		"adana":    reconcile.NewSet("aladağ", "merkez"),
		"istanbul": reconcile.NewSet("adalar"),
		"izmir":    reconcile.NewSet("merkez"),
	}

	lines := render(t, reconcile.Compare("v1-sehir", gold, target))

	assert.Equal(t, []string{
		"",
		"====================",
		"Analyzing v1-sehir...",
		"====================",
		"[ADANA] Eksik İlçeler (Eklemeniz Gerekenler): Çukurova",
		"    -> [ADANA] Fazla/Eski Kayıtlar (Silmeniz/Düzenlemeniz Gerekenler): Merkez",
		"       * ÖNERİ (SQL): UPDATE sehir SET city_name = 'Çukurova' WHERE city_name = 'Merkez' AND province_id = ...;",
		"[İZMİR] Eksik İlçeler (Eklemeniz Gerekenler): Bayraklı, Buca, Karşıyaka",
		"    -> [İZMİR] Fazla/Eski Kayıtlar (Silmeniz/Düzenlemeniz Gerekenler): Merkez",
		"       * BİLGİ: 'Merkez' kaydı, şu yeni ilçelere bölünmüş olabilir: Bayraklı, Buca, Karşıyaka.",
		"!! CRITICAL: Province 'van' not found in v1-sehir !!",
		"Total missing in v1-sehir: 4",
	}, lines)
}

func TestRender_ExtraWithoutMissing(t *testing.T) {
	gold := reconcile.Dataset{"bolu": reconcile.NewSet("mengen")}
	target := reconcile.Dataset{"bolu": reconcile.NewSet("mengen", "eski köy")}

	lines := render(t, reconcile.Compare("admin-sehir", gold, target))

	assert.Equal(t, "    -> [BOLU] Fazla/Eski Kayıtlar (Silmeniz/Düzenlemeniz Gerekenler): Eski Köy", lines[4])
	assert.Equal(t, "admin-sehir is perfectly synced with Güncel Liste.", lines[5])
}

func TestWriteJSON(t *testing.T) {
	gold := reconcile.Dataset{"x": reconcile.NewSet("a", "b")}
	target := reconcile.Dataset{"x": reconcile.NewSet("merkez")}

	var buf bytes.Buffer
	doc := Document{
		RunID:       "run-1",
		Gold:        "Güncel Liste",
		GeneratedAt: time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC),
		Reports:     []*reconcile.Report{reconcile.Compare("admin-sehir", gold, target)},
	}
	require.NoError(t, WriteJSON(&buf, doc))

	var decoded struct {
		RunID   string `json:"run_id"`
		Reports []struct {
			Target  string `json:"target"`
			Summary struct {
				Missing int `json:"missing"`
				Advice  int `json:"advice"`
			} `json:"summary"`
			Results []struct {
				Advice struct {
					Kind string   `json:"kind"`
					To   []string `json:"to"`
				} `json:"advice"`
			} `json:"results"`
		} `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "run-1", decoded.RunID)
	require.Len(t, decoded.Reports, 1)
	assert.Equal(t, "admin-sehir", decoded.Reports[0].Target)
	assert.Equal(t, 2, decoded.Reports[0].Summary.Missing)
	assert.Equal(t, 1, decoded.Reports[0].Summary.Advice)
	assert.Equal(t, "split", decoded.Reports[0].Results[0].Advice.Kind)
	assert.Equal(t, []string{"a", "b"}, decoded.Reports[0].Results[0].Advice.To)
}
