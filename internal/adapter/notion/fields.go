package notion

import (
	"slices"
	"strings"

	"spotplan/internal/core/domain"
)

// Campaign fields known to the gateway. Product fields use the product code.
const (
	fieldStation      = "station"
	fieldStart        = "start"
	fieldEnd          = "end"
	fieldWeekdays     = "weekdays"
	fieldPMM          = "pmm"
	fieldDistribution = "distribution"
)

// aliases lists the property names tried for each field, in order. The first
// name is the one written on update.
var aliases = map[string][]string{
	string(domain.Spots30): {"Spots 30ʺ", "Spots 30", "spots30"},
	string(domain.Spots5):  {"Spots 5ʺ", "Spots 5", "spots5"},
	string(domain.Spots15): {"Spots 15ʺ", "Spots 15", "spots15"},
	string(domain.Spots60): {"Spots 60ʺ", "Spots 60", "spots60"},
	string(domain.Test60):  {"Test. 60ʺ", "Test 60", "test60"},
	fieldStation:           {"Emissora", "emissora"},
	fieldStart:             {"Data inicio", "Data Início", "inicio"},
	fieldEnd:               {"Data fim", "Data Fim", "fim"},
	fieldWeekdays:          {"Dias da semana", "Dias", "dias"},
	fieldPMM:               {"PMM", "pmm", "Pmm", "PMM ", " PMM", "PMM_", "pmm_value"},
	fieldDistribution:      {"Distribuição Customizada", "Distribuicao Customizada"},
}

// fuzzy holds the lowercase substring searched in every property name when
// no alias matches.
var fuzzy = map[string]string{
	fieldPMM: "pmm",
}

// defaults is the value used for a field that is absent or empty.
var defaults = map[string]string{
	string(domain.Spots30): "0",
	string(domain.Spots5):  "0",
	string(domain.Spots15): "0",
	string(domain.Spots60): "0",
	string(domain.Test60):  "0",
	fieldStation:           domain.DefaultStationName,
	fieldStart:             domain.DateKey(domain.DefaultPeriodStart),
	fieldEnd:               domain.DateKey(domain.DefaultPeriodEnd),
	fieldWeekdays:          strings.Join(domain.WeekdayNames(domain.DefaultWeekdays), ","),
	fieldPMM:               "1000",
	fieldDistribution:      "",
}

func defaultFor(field string) string {
	return defaults[field]
}

// propertyName is the canonical property written for field.
func propertyName(field string) string {
	return aliases[field][0]
}

// lookup finds the property of field. Exact aliases win over the substring
// search, which scans names in sorted order to stay deterministic.
func lookup(props map[string]property, field string) (string, property, bool) {
	for _, name := range aliases[field] {
		if p, ok := props[name]; ok {
			return name, p, true
		}
	}
	needle, ok := fuzzy[field]
	if !ok {
		return "", property{}, false
	}
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), needle) {
			return name, props[name], true
		}
	}
	return "", property{}, false
}
