package flexi

import (
	"strings"

	"github.com/dkoosis/show/pkg/registry"
	"github.com/dkoosis/show/pkg/renderable"
	"github.com/dkoosis/show/pkg/value"
)

// countishNames are field names that mark an object array as a counts
// shape. Duration-flavored entries also carry a seconds multiplier so the
// table can close with a summed total.
var countishNames = map[string]float64{
	"count":   0,
	"counts":  0,
	"plays":   0,
	"total":   0,
	"n":       0,
	"qty":     0,
	"times":   0,
	"seconds": 1,
	"minutes": 60,
	"hours":   3600,
}

// CountsShape reports whether v is a counts-style array — uniform objects
// with at most two keys, values drawn from numbers and strings, and a
// count-named all-numeric key — and returns that key.
func CountsShape(v value.Value) (string, bool) {
	if !v.AllObjects() {
		return "", false
	}
	first := v.Items()[0].Keys()
	if len(first) == 0 || len(first) > 2 {
		return "", false
	}
	for _, el := range v.Items() {
		ks := el.Keys()
		if len(ks) != len(first) {
			return "", false
		}
		for i, k := range ks {
			if k != first[i] {
				return "", false
			}
			switch el.Field(k).Kind() {
			case value.Number, value.String:
			default:
				return "", false
			}
		}
	}

	// exact "count" wins; otherwise the first count-named numeric key
	var candidate string
	for _, k := range first {
		if _, ok := countishNames[k]; !ok || !allNumeric(v, k) {
			continue
		}
		if k == "count" {
			return k, true
		}
		if candidate == "" {
			candidate = k
		}
	}
	return candidate, candidate != ""
}

func countsShape(v value.Value) (string, bool) { return CountsShape(v) }

func allNumeric(v value.Value, key string) bool {
	for _, el := range v.Items() {
		if el.Field(key).Kind() != value.Number {
			return false
		}
	}
	return true
}

// renderCounts builds the label/count/bar table. Bars scale against the
// largest count; duration-named counts get a summed total caption.
func (e *Engine) renderCounts(v value.Value, header, countKey string) renderable.Renderable {
	items := v.Items()
	maxCount, sum := 0.0, 0.0
	for _, el := range items {
		c := el.Field(countKey).Float()
		if c > maxCount {
			maxCount = c
		}
		sum += c
	}
	if maxCount == 0 {
		maxCount = 1
	}

	rows := make([]renderable.BarRow, 0, len(items))
	for _, el := range items {
		var labelParts []string
		for _, k := range el.Keys() {
			if k == countKey {
				continue
			}
			labelParts = append(labelParts, e.Render(el.Field(k), k).Render())
		}
		c := el.Field(countKey)
		rows = append(rows, renderable.BarRow{
			Label: strings.Join(labelParts, " "),
			Count: e.formatCount(c),
			Ratio: c.Float() / maxCount,
		})
	}

	caption := ""
	if mult := countishNames[countKey]; mult > 0 {
		caption = "total " + registry.FormatSeconds(sum*mult)
	}
	return renderable.NewBarTable(e.theme, e.headerTitle(header), rows, caption)
}

// formatCount renders a count with digit grouping; whole numbers drop the
// fraction.
func (e *Engine) formatCount(c value.Value) string {
	f := c.Float()
	if f == float64(int64(f)) {
		return e.num.Sprintf("%d", int64(f))
	}
	return e.num.Sprintf("%.1f", f)
}
