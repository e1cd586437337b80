package shipping

import "strings"

// Philippine province keywords per coarse shipping region.
var (
	luzonProvinces = []string{
		"abra", "albay", "aurora", "bataan", "batanes", "batangas", "benguet",
		"bulacan", "cagayan", "camarines", "catanduanes", "cavite", "ifugao",
		"ilocos", "isabela", "kalinga", "la union", "laguna", "marinduque",
		"masbate", "mindoro", "mountain province", "nueva", "palawan",
		"pampanga", "pangasinan", "quezon", "quirino", "rizal", "romblon",
		"sorsogon", "tarlac", "zambales",
	}
	visayasProvinces = []string{
		"aklan", "antique", "biliran", "bohol", "capiz", "cebu", "guimaras",
		"iloilo", "leyte", "negros", "samar", "siquijor",
	}
	mindanaoProvinces = []string{
		"agusan", "basilan", "bukidnon", "camiguin", "compostela", "cotabato",
		"davao", "dinagat", "lanao", "maguindanao", "misamis", "sarangani",
		"sultan kudarat", "sulu", "surigao", "tawi-tawi", "zamboanga",
	}
)

// Region classifies a lowercase province name into a coarse shipping region
// ("metro manila", "luzon", "visayas", "mindanao") or "" when unknown.
func Region(province string) string {
	p := strings.ToLower(strings.TrimSpace(province))
	if p == "" {
		return ""
	}

	if strings.Contains(p, "metro manila") || p == "manila" {
		return "metro manila"
	}

	for _, l := range luzonProvinces {
		if strings.Contains(p, l) {
			return "luzon"
		}
	}
	for _, v := range visayasProvinces {
		if strings.Contains(p, v) {
			return "visayas"
		}
	}
	for _, m := range mindanaoProvinces {
		if strings.Contains(p, m) {
			return "mindanao"
		}
	}

	return ""
}
