package csvexport

import (
	"strings"
	"time"
)

// Marshal başlık + satırları CSV metnine çevirir. Her değer çift tırnak
// içine alınır; içteki tırnaklar ikilenerek kaçırılır.
func Marshal(headers []string, rows [][]string) []byte {
	var b strings.Builder
	writeRow(&b, headers)
	for _, row := range rows {
		writeRow(&b, row)
	}
	return []byte(b.String())
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// Filename "prefix_YYYY-MM-DD.csv" biçiminde dosya adı üretir.
func Filename(prefix string, t time.Time) string {
	return prefix + "_" + t.Format("2006-01-02") + ".csv"
}
