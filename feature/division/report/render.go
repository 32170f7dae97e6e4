package report

import (
	"fmt"
	"strings"

	"district-sync/core/reconcile"
	"district-sync/core/textfold"
)

const banner = "===================="

// Render writes the text report for one target into sink. goldLabel names the
// gold dataset in the final summary line.
func Render(sink *Sink, r *reconcile.Report, goldLabel string) {
	sink.Line("")
	sink.Line(banner)
	sink.Line("Analyzing %s...", r.Target)
	sink.Line(banner)

	for _, res := range r.Results {
		renderProvince(sink, r.Target, res)
	}

	sink.Line("%s", SummaryLine(r, goldLabel))
}

// SummaryLine returns the closing line of a target report.
func SummaryLine(r *reconcile.Report, goldLabel string) string {
	if r.Synced() {
		return r.Target + " is perfectly synced with " + goldLabel + "."
	}
	return fmt.Sprintf("Total missing in %s: %d", r.Target, r.TotalMissing())
}

func renderProvince(sink *Sink, target string, res reconcile.ProvinceResult) {
	if res.Critical {
		sink.Line("!! CRITICAL: Province '%s' not found in %s !!", res.Province, target)
		return
	}

	label := textfold.FoldUpper(res.Province)

	if len(res.Missing) > 0 {
		sink.Line("[%s] Eksik İlçeler (Eklemeniz Gerekenler): %s", label, titleList(res.Missing))
	}

	if len(res.Extra) == 0 {
		return
	}
	sink.Line("    -> [%s] Fazla/Eski Kayıtlar (Silmeniz/Düzenlemeniz Gerekenler): %s", label, titleList(res.Extra))

	if res.Advice == nil {
		return
	}
	switch res.Advice.Kind {
	case reconcile.AdviceRename:
		sink.Line("       * ÖNERİ (SQL): UPDATE sehir SET city_name = '%s' WHERE city_name = 'Merkez' AND province_id = ...;",
			textfold.FoldTitle(res.Advice.To[0]))
	case reconcile.AdviceSplit:
		sink.Line("       * BİLGİ: 'Merkez' kaydı, şu yeni ilçelere bölünmüş olabilir: %s.", titleList(res.Advice.To))
	}
}

func titleList(names []string) string {
	titled := make([]string, len(names))
	for i, n := range names {
		titled[i] = textfold.FoldTitle(n)
	}
	return strings.Join(titled, ", ")
}
